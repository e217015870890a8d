package launcher

import (
	"limeal.fr/rsplaunch/pkg/responsefile"
)

/////////////////////////////////////////////////////////////////////
// Pass-through arguments
/////////////////////////////////////////////////////////////////////

// PassThroughArguments writes every argument the launcher was started with
// (except args[0]) to the response file, one per line, quoting those that
// contain whitespace.
func (l *Launcher) PassThroughArguments(c *ExecuteContext) {
	if len(l.args) < 2 {
		return
	}

	for _, arg := range l.args[1:] {
		c.AddCmdLineParameter("%s", responsefile.EscapeArgument(arg))
	}
}
