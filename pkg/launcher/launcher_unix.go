//go:build unix

package launcher

const executableSuffix = ""

func newSpawner(args []string) ProcessSpawner {
	argv0 := ""
	if len(args) > 0 {
		argv0 = args[0]
	}
	return ForkExec{Argv0: argv0}
}
