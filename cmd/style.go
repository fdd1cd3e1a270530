package main

import (
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/mental-dice/domain/dice"
)

const welcome = "Welcome to the generalized non-transitive dice game!"

func banner(plain bool) string {
	s := ""
	if !plain {
		big, err := pterm.DefaultBigText.WithLetters(
			putils.LettersFromStringWithStyle("M", pterm.FgRed.ToStyle()),
			putils.LettersFromStringWithStyle("ental ", pterm.FgDarkGray.ToStyle()),
			putils.LettersFromStringWithStyle("D", pterm.FgRed.ToStyle()),
			putils.LettersFromStringWithStyle("ice", pterm.FgDarkGray.ToStyle()),
		).Srender()
		if err == nil {
			s += big
		}
	}
	return s + pterm.Sprintln(welcome)
}

func usageBox(program string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(0).WithBottomPadding(0)
	return pbox.WithTitle(pterm.LightYellow("|USAGE|")).WithTitleTopLeft().Sprintln(dice.Usage(program))
}
