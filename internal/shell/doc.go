// Package shell renders toolchain environment assignments as statements the
// calling shell can eval. POSIX shells (bash, zsh, sh) share one syntax; fish
// uses set -gx. It also generates rc-file hook snippets that eval the tool on
// shell startup.
package shell
