package rpg

import "strconv"

// Event command codes with special handling or names.
const (
	CodeEnd                 = 0
	CodeShowText            = 101
	CodeShowChoices         = 102
	CodeInputNumber         = 103
	CodeChangeItems         = 104
	CodeChangeGold          = 105
	CodeChangeVariables     = 106
	CodeChangeSwitches      = 107
	CodeComment             = 108
	CodeConditionalBranch   = 111
	CodeLoop                = 112
	CodeBreakLoop           = 113
	CodeExitEventProcessing = 115
	CodeEraseEvent          = 116
	CodeControlSelfSwitch   = 123
	CodeChangeBattleBGM     = 132
	CodeTransferPlayer      = 201
	CodeSetEventLocation    = 202
	CodeScrollMap           = 203
	CodeChangeMapSettings   = 204
	CodeSetMoveRoute        = 209
	CodeWaitForMoves        = 210
	CodeChangeTileset       = 211
	CodeChangeParallax      = 212
	CodeWait                = 221
	CodeScreenFlash         = 224
	CodeScreenShake         = 225
	CodePlayBGMOld          = 230
	CodeShowPicture         = 231
	CodePlayME              = 232
	CodePlaySEOld           = 233
	CodeStopSEOld           = 234
	CodeErasePicture        = 235
	CodePlayBGM             = 241
	CodeFadeOutBGM          = 242
	CodePlayBGS             = 245
	CodeFadeOutBGS          = 246
	CodePlaySE              = 250
	CodeStopSE              = 251
	CodeScript              = 355
	CodeWhenChoice          = 402
	CodeEndChoice           = 404
	CodeCommentMore         = 408
	CodeElse                = 411
	CodeBranchEnd           = 412
	CodeMoveCommand         = 509
	CodeScriptMore          = 655
)

var commandNames = map[int64]string{
	CodeEnd:                 "End",
	CodeShowText:            "Show Text",
	CodeShowChoices:         "Show Choices",
	CodeInputNumber:         "Input Number",
	CodeChangeItems:         "Change Items",
	CodeChangeGold:          "Change Gold",
	CodeChangeVariables:     "Change Variables",
	CodeChangeSwitches:      "Change Switches",
	CodeComment:             "Comment",
	CodeConditionalBranch:   "Conditional Branch",
	CodeLoop:                "Loop",
	CodeBreakLoop:           "Break Loop",
	CodeExitEventProcessing: "Exit Event Processing",
	CodeEraseEvent:          "Erase Event",
	CodeControlSelfSwitch:   "Control Self Switch",
	CodeChangeBattleBGM:     "Change Battle BGM",
	CodeTransferPlayer:      "Transfer Player",
	CodeSetEventLocation:    "Set Event Location",
	CodeScrollMap:           "Scroll Map",
	CodeChangeMapSettings:   "Change Map Settings",
	CodeSetMoveRoute:        "Set Movement Route",
	CodeWaitForMoves:        "Wait for Move's Completion",
	CodeChangeTileset:       "Change Tileset",
	CodeChangeParallax:      "Change Parallax",
	CodeWait:                "Wait",
	CodeScreenFlash:         "Screen Flash",
	CodeScreenShake:         "Screen Shake",
	CodePlayBGMOld:          "Play BGM",
	CodeShowPicture:         "Show Picture",
	CodePlayME:              "Play ME",
	CodePlaySEOld:           "Play SE",
	CodeStopSEOld:           "Stop SE",
	CodeErasePicture:        "Erase Picture",
	CodePlayBGM:             "Play BGM",
	CodeFadeOutBGM:          "Fade Out BGM",
	CodePlayBGS:             "Play BGS",
	CodeFadeOutBGS:          "Fade Out BGS",
	CodePlaySE:              "Play SE",
	CodeStopSE:              "Stop SE",
	CodeScript:              "Script",
	CodeWhenChoice:          "When Choice",
	CodeEndChoice:           "End Choice",
	CodeCommentMore:         "Comment (continued)",
	CodeElse:                "Else",
	CodeBranchEnd:           "Branch End",
	CodeMoveCommand:         "Movement Command",
	CodeScriptMore:          "Script (continued)",
}

// CommandName returns the display name of an event command code.
func CommandName(code int64) string {
	if n, ok := commandNames[code]; ok {
		return n
	}
	return "Unknown Command (" + strconv.FormatInt(code, 10) + ")"
}

// KnownCommand reports whether code has a name.
func KnownCommand(code int64) bool {
	_, ok := commandNames[code]
	return ok
}

var moveNames = []string{
	"",
	"Move Down", "Move Left", "Move Right", "Move Up",
	"Move Lower Left", "Move Lower Right", "Move Upper Left", "Move Upper Right",
	"Move at Random", "Move toward Player", "Move away from Player",
	"1 Step Forward", "1 Step Backward", "Jump...", "Wait...",
	"Turn Down", "Turn Left", "Turn Right", "Turn Up",
	"Turn 90° Right", "Turn 90° Left", "Turn 180°", "Turn 90° Right or Left",
	"Turn at Random", "Turn toward Player", "Turn away from Player",
	"Switch ON...", "Switch OFF...", "Change Speed...", "Change Freq...",
	"Move Animation ON", "Move Animation OFF", "Stop Animation ON", "Stop Animation OFF",
	"Direction Fix ON", "Direction Fix OFF", "Through ON", "Through OFF",
	"Always on Top ON", "Always on Top OFF", "Change Graphic...",
	"Change Opacity...", "Change Blending...", "Play SE...", "Script...",
}

// MoveCommandName returns the display name of a move route command
// code. Code 0 terminates a route.
func MoveCommandName(code int64) string {
	if code == 0 {
		return "End of Route"
	}
	if code > 0 && code < int64(len(moveNames)) {
		return moveNames[code]
	}
	return "Code " + strconv.FormatInt(code, 10)
}
