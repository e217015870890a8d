//go:build unix && !darwin

package launcher

var openerCommand = "xdg-open"
