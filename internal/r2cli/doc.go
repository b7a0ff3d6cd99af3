// Package r2cli locates the radare2 binary and builds its command line.
//
// # Discovery
//
// The Discoverer interface resolves the radare2 executable:
//
//	discoverer := r2cli.NewDiscoverer(&r2cli.Config{
//	    ExePath: "",           // Optional explicit path
//	    Logger:  slog.Default(),
//	})
//	exePath, err := discoverer.Discover(ctx)
//
// Discovery searches in the following order:
//  1. Explicit path in Config.ExePath (if provided)
//  2. "radare2", then "r2", in the system PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin, ~/.local/bin)
//
// # Command Building
//
// BuildArgs produces the argument vector for pipe mode. Radare2 is always
// started with -q0, which suppresses the banner, quits cleanly on "q!", and
// terminates every command response with a NUL byte:
//
//	args := r2cli.BuildArgs([]string{"-e", "io.cache=true"}, "/bin/ls")
//	// ["-q0", "-e", "io.cache=true", "/bin/ls"]
package r2cli
