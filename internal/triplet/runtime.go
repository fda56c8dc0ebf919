package triplet

// goarchMachine은 GOARCH 값을 uname machine 표기로 옮긴다.
var goarchMachine = map[string]string{
	"amd64":   "x86_64",
	"386":     "i686",
	"arm64":   "aarch64",
	"arm":     "armv7l",
	"ppc64le": "ppc64le",
	"s390x":   "s390x",
	"riscv64": "riscv64",
}

func hostFromRuntime(goos, goarch string) Host {
	mach, ok := goarchMachine[goarch]
	if !ok {
		mach = goarch
	}
	// uname on macOS reports arm64, not aarch64
	if goos == "darwin" && goarch == "arm64" {
		mach = "arm64"
	}
	if goos == "windows" && goarch == "amd64" {
		mach = "amd64"
	}
	return Host{OS: goos, Machine: mach}
}
