package commands

import (
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/admin"
	"github.com/FenixXx/b3-plugin-poweradminurt/internal/console"
)

// CvarChoice maps one accepted argument to a cvar value and the public
// acknowledgement announcing it.
type CvarChoice struct {
	Arg   string
	Value any
	Say   string
}

// CvarSwitch handles commands that set a cvar from an enumerated argument,
// e.g. !paskins <on/off> or !pastamina <default/regain/infinite>. Arguments
// are matched exactly.
type CvarSwitch struct {
	names   []string
	cvar    string
	help    string
	choices []CvarChoice

	console console.Console
	level   admin.LevelRange
}

func (c *CvarSwitch) Names() []string                 { return c.names }
func (c *CvarSwitch) RequiredLevel() admin.LevelRange { return c.level }
func (c *CvarSwitch) Help() string                    { return c.help }

func (c *CvarSwitch) Handle(inv *admin.Invocation) error {
	for _, choice := range c.choices {
		if choice.Arg == inv.Data {
			c.console.SetCvar(c.cvar, choice.Value)
			c.console.Say(choice.Say)
			return nil
		}
	}
	return admin.NewUsageError(c.names[0])
}

func onOff(names []string, cvar, help, label string, on, off any, cons console.Console, level admin.LevelRange) *CvarSwitch {
	return &CvarSwitch{
		names: names,
		cvar:  cvar,
		help:  help,
		choices: []CvarChoice{
			{Arg: "on", Value: on, Say: "^7" + label + ": ^2ON"},
			{Arg: "off", Value: off, Say: "^7" + label + ": ^1OFF"},
		},
		console: cons,
		level:   level,
	}
}

// NewSkins creates !paskins <on/off> (g_skins).
func NewSkins(cons console.Console, level admin.LevelRange) *CvarSwitch {
	return onOff([]string{"paskins", "skins"}, "g_skins",
		"<on/off> - set the use of client skins", "Client skins", "1", "0", cons, level)
}

// NewFunstuff creates !pafunstuff <on/off> (g_funstuff).
func NewFunstuff(cons console.Console, level admin.LevelRange) *CvarSwitch {
	return onOff([]string{"pafunstuff", "funstuff"}, "g_funstuff",
		"<on/off> - set the use of funstuff", "Funstuff", 1, 0, cons, level)
}

// NewGoto creates !pagoto <on/off> (g_allowgoto).
func NewGoto(cons console.Console, level admin.LevelRange) *CvarSwitch {
	return onOff([]string{"pagoto", "goto"}, "g_allowgoto",
		"<on/off> - set the goto", "Goto", 1, 0, cons, level)
}

// NewStamina creates !pastamina <default/regain/infinite> (g_stamina).
func NewStamina(cons console.Console, level admin.LevelRange) *CvarSwitch {
	return &CvarSwitch{
		names: []string{"pastamina", "stamina"},
		cvar:  "g_stamina",
		help:  "<default/regain/infinite> - set the stamina behavior",
		choices: []CvarChoice{
			{Arg: "default", Value: 0, Say: "^7Stamina mode: ^3DEFAULT"},
			{Arg: "regain", Value: 1, Say: "^7Stamina mode: ^3REGAIN"},
			{Arg: "infinite", Value: 2, Say: "^7Stamina mode: ^3INFINITE"},
		},
		console: cons,
		level:   level,
	}
}
