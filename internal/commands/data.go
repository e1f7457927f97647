// internal/commands/data.go
package commands

// commandNames is the static sparse table of fixed Traktor command IDs.
// The numbering is Traktor's: sparse, irregular, and grown over many
// releases, which is why it is a map and not an enum.
var commandNames = map[int]string{
	// Transport
	100: "Play/Pause",
	101: "Cue",
	102: "CUP (Cue + Play)",
	103: "Cue Set + Store",
	105: "Skip To Start",
	106: "Seek Position",
	108: "Jog Turn",
	109: "Jog Scratch + Tempo Bend",
	111: "Flux Mode On",
	112: "Reverse (Flux)",
	115: "Timecode Mode Absolute",
	116: "Timecode Mode Relative",
	117: "Timecode Mode Internal",

	// Tempo + sync
	200: "Tempo Adjust",
	201: "Tempo Bend (Stepless)",
	202: "Tempo Bend Up",
	203: "Tempo Bend Down",
	205: "Tempo Sync",
	206: "Sync On",
	207: "Phase Sync",
	208: "Beat Sync",
	210: "Tap Tempo",
	211: "Tempo Reset",
	213: "Set As Tempo Master",
	214: "Tempo Range Selector",
	220: "Keylock On",
	221: "Key Adjust",

	// Mixer
	300: "Deck Volume",
	301: "Deck Pre-Fader Gain",
	302: "Deck Balance",
	305: "X-Fader Position",
	306: "X-Fader Assign Left",
	307: "X-Fader Assign Right",
	310: "Monitor Cue On",
	311: "Monitor Volume",
	312: "Monitor Mix",
	315: "Master Volume",
	316: "Master Limiter On",
	320: "Mic Volume",
	321: "Mic Talkover",

	// EQ + filter
	350: "EQ High",
	351: "EQ Mid",
	352: "EQ Low",
	353: "EQ High Kill",
	354: "EQ Mid Kill",
	355: "EQ Low Kill",
	360: "Filter On",
	361: "Filter Amount",

	// Loops + moves
	400: "Loop Size Selector",
	401: "Loop Set",
	402: "Loop Active On",
	403: "Loop In",
	404: "Loop Out",
	405: "Loop Size x2",
	406: "Loop Size /2",
	410: "Move Mode Selector",
	411: "Move Size Selector",
	412: "Move Forward",
	413: "Move Backward",
	415: "Beatjump Forward",
	416: "Beatjump Backward",

	// Cue points
	500: "Next/Prev Cue Point",
	501: "Next Cue Point",
	502: "Prev Cue Point",
	505: "Hotcue 1",
	506: "Hotcue 2",
	507: "Hotcue 3",
	508: "Hotcue 4",
	509: "Hotcue 5",
	510: "Hotcue 6",
	511: "Hotcue 7",
	512: "Hotcue 8",
	515: "Delete Current Cue Point",
	516: "Store As Next Free Hotcue",
	517: "Cue Type Selector",

	// Deck common
	600: "Load Selected",
	601: "Unload",
	602: "Load Next",
	603: "Load Previous",
	605: "Load Loop Play",
	607: "Deck Flavor Selector",
	610: "Deck Focus Selector",
	611: "Advanced Panel Toggle",
	615: "Keylock On (Preserve Pitch)",

	// FX units
	700: "FX Unit 1 On",
	701: "FX Unit 2 On",
	702: "FX Unit 3 On",
	703: "FX Unit 4 On",
	710: "FX Dry/Wet Adjust",
	711: "FX Knob 1",
	712: "FX Knob 2",
	713: "FX Knob 3",
	715: "FX Button 1",
	716: "FX Button 2",
	717: "FX Button 3",
	720: "FX Effect Selector",
	721: "FX Panel Mode Selector",
	722: "FX Store Preset",
	725: "FX Unit Mode Group",
	726: "FX Unit Mode Single",

	// Browser
	900: "Browser List Scroll",
	901: "Browser List Select Up/Down",
	902: "Browser Tree Scroll",
	903: "Browser Tree Select Up/Down",
	905: "Browser Tree Expand/Collapse",
	906: "Browser Open/Close Node",
	910: "Favorites Selector",
	911: "Preparation List Append",
	912: "Preparation List Jump To",
	915: "Browser View Toggle",
	916: "Search Field Focus",
	920: "Preview Player Play/Pause",
	921: "Preview Player Seek",
	922: "Preview Player Load",

	// Global + layout
	1000: "Layout Selector",
	1001: "Fullscreen On",
	1005: "Snap On",
	1006: "Quantize On",
	1010: "Broadcasting On",
	1011: "Record On",
	1015: "Cruise Mode On",

	// Recorder
	1100: "Audio Recorder On",
	1101: "Audio Recorder Cut",
	1102: "Audio Recorder Level",

	// Modifier-adjacent (the 8 modifier slots themselves are a computed
	// block at modifierBase)
	1475: "Modifier Conditions Reset",

	// Remix decks: fixed commands; the per-cell trigger/state blocks are
	// computed ranges at remixTriggerBase/remixStateBase.
	2200: "Remix Deck Quantize Selector",
	2201: "Remix Deck Capture Source Selector",
	2205: "Slot 1 Volume",
	2206: "Slot 2 Volume",
	2207: "Slot 3 Volume",
	2208: "Slot 4 Volume",
	2210: "Slot 1 Filter Amount",
	2211: "Slot 2 Filter Amount",
	2212: "Slot 3 Filter Amount",
	2213: "Slot 4 Filter Amount",
	2220: "Slot 1 Mute On",
	2221: "Slot 2 Mute On",
	2222: "Slot 3 Mute On",
	2223: "Slot 4 Mute On",
	2230: "Slot Retrigger",
	2231: "Slot Stop",
	2235: "Page Selector",
	2240: "Sample Page Up",
	2241: "Sample Page Down",

	// Mixer meters: fixed master meters; per-deck pre/post blocks are a
	// computed range at meterBase.
	2830: "Mixer Level Meter Master Left",
	2831: "Mixer Level Meter Master Right",
	2835: "Mixer Level Meter Monitor",

	// Output-only indicators
	2900: "Deck Is Loaded",
	2901: "Deck Is Playing",
	2902: "Deck Is In Active Loop",
	2903: "Deck Is Synced",
	2905: "Beat Phase Monitor",
	2906: "Track End Warning",
	2910: "Slot Is Playing",
	2911: "Slot Is Muted",
}
