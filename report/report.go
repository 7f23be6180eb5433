// Package report prints outcomes of non-interactive commands to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/proctor/internal/osutil"
)

func SettingsSaved() {
	pterm.Success.Println("settings saved successfully")
}

func SettingsReset() {
	pterm.Success.Println("settings restored to their defaults")
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
