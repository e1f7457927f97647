// Package commands maps Traktor's numeric command IDs to human-readable
// command names and back. The ID space is large and irregular: a static
// sparse table covers the fixed commands, a handful of computed ranges
// cover the block-allocated ones (remix-deck cells, modifier slots,
// per-deck mixer meters), and any ID outside both still round-trips
// through the literal "Command #<id>" fallback.
//
// The table is immutable after package init and safe to share across
// goroutines.
package commands

import (
	"fmt"
	"strings"
)

// commandIDs is the reverse of commandNames plus the small fixed ranges,
// built once at init.
var commandIDs map[string]int

func init() {
	commandIDs = make(map[string]int, len(commandNames)+modifierCount+duplicateDeckCount+meterCount)
	for id, name := range commandNames {
		commandIDs[name] = id
	}
	for m := 1; m <= modifierCount; m++ {
		commandIDs[modifierName(m)] = modifierBase + m - 1
	}
	for d := 0; d < duplicateDeckCount; d++ {
		commandIDs[duplicateDeckName(d)] = duplicateBase + d
	}
	for i := 0; i < meterCount; i++ {
		commandIDs[meterName(i)] = meterBase + i
	}
}

// NameForID resolves a command ID to its display name. Unknown IDs get the
// "Command #<id>" fallback so they survive decode/encode cycles unchanged.
func NameForID(id int) string {
	if name, ok := commandNames[id]; ok {
		return name
	}
	if name, ok := rangedName(id); ok {
		return name
	}
	return fmt.Sprintf("Command #%d", id)
}

// IDForName resolves a display name back to its command ID, including the
// computed ranges and the "Command #<id>" fallback. Unknown names yield 0.
func IDForName(name string) int {
	if id, ok := commandIDs[name]; ok {
		return id
	}
	if id, ok := parseCellName(name); ok {
		return id
	}
	var id int
	if _, err := fmt.Sscanf(name, "Command #%d", &id); err == nil && name == fmt.Sprintf("Command #%d", id) {
		return id
	}
	return 0
}

// Known reports whether id is covered by the static table or a computed
// range, as opposed to the fallback naming.
func Known(id int) bool {
	if _, ok := commandNames[id]; ok {
		return true
	}
	_, ok := rangedName(id)
	return ok
}

// Block-allocated ID ranges. Traktor assigns remix-deck cell commands in
// runs of 16 per slot, one run per slot across 4 slots, and the other
// blocks as flat runs.
const (
	modifierBase  = 1480 // 8 modifier slots
	modifierCount = 8

	duplicateBase      = 1912 // duplicate track deck A..D
	duplicateDeckCount = 4

	remixTriggerBase = 2316 // slot 1..4 x cell 1..16
	remixStateBase   = 2452
	remixSlots       = 4
	remixCells       = 16

	meterBase  = 2844 // deck A..D x pre/post fader x left/right
	meterCount = 16
)

func modifierName(m int) string {
	return fmt.Sprintf("Modifier #%d", m)
}

func duplicateDeckName(d int) string {
	return fmt.Sprintf("Duplicate Track Deck %c", 'A'+d)
}

func meterName(i int) string {
	deck := 'A' + rune(i/4)
	fader := "Pre-Fader"
	if i%4 >= 2 {
		fader = "Post-Fader"
	}
	side := "Left"
	if i%2 == 1 {
		side = "Right"
	}
	return fmt.Sprintf("Mixer Level Meter Deck %c %s %s", deck, fader, side)
}

func cellName(base, id int, kind string) string {
	off := id - base
	return fmt.Sprintf("Slot %d Cell %d %s", off/remixCells+1, off%remixCells+1, kind)
}

// rangedName resolves IDs inside the computed blocks. Evaluated only on a
// static-table miss.
func rangedName(id int) (string, bool) {
	switch {
	case id >= modifierBase && id < modifierBase+modifierCount:
		return modifierName(id - modifierBase + 1), true
	case id >= duplicateBase && id < duplicateBase+duplicateDeckCount:
		return duplicateDeckName(id - duplicateBase), true
	case id >= remixTriggerBase && id < remixTriggerBase+remixSlots*remixCells:
		return cellName(remixTriggerBase, id, "Trigger"), true
	case id >= remixStateBase && id < remixStateBase+remixSlots*remixCells:
		return cellName(remixStateBase, id, "State"), true
	case id >= meterBase && id < meterBase+meterCount:
		return meterName(id - meterBase), true
	}
	return "", false
}

// parseCellName reverses "Slot N Cell M Trigger"/"Slot N Cell M State"
// shaped names back to their computed IDs.
func parseCellName(name string) (int, bool) {
	if !strings.HasPrefix(name, "Slot ") {
		return 0, false
	}
	var slot, cell int
	var kind string
	if _, err := fmt.Sscanf(name, "Slot %d Cell %d %s", &slot, &cell, &kind); err != nil {
		return 0, false
	}
	if slot < 1 || slot > remixSlots || cell < 1 || cell > remixCells {
		return 0, false
	}

	var base int
	switch kind {
	case "Trigger":
		base = remixTriggerBase
	case "State":
		base = remixStateBase
	default:
		return 0, false
	}

	id := base + (slot-1)*remixCells + (cell - 1)
	// Reject names with trailing junk past the pattern.
	if NameForID(id) != name {
		return 0, false
	}
	return id, true
}
