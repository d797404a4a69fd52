package lib

import (
	"github.com/fatih/color"
)

var (
	// Green is used for the summary line when every case passed
	Green = color.New(color.FgHiGreen).SprintfFunc()
	// GreenBold is used for PASSED markers
	GreenBold = color.New(color.FgHiGreen, color.Bold).SprintfFunc()
	// Red is used for the summary line when a case did not pass
	Red = color.New(color.FgHiRed).SprintfFunc()
	// RedBold is used for FAILED markers and errors
	RedBold = color.New(color.FgHiRed, color.Bold).SprintfFunc()
	// Bold is used for banners and SKIPPED markers
	Bold = color.New(color.Bold).SprintfFunc()
)
