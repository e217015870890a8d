//go:build darwin

package launcher

var openerCommand = "open"
