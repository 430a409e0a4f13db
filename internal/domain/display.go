package domain

// DisplayInfo is the presentation mapping of a status or category:
// a human label and a color token for the grid. Keeping the mapping in one
// table (instead of switch statements at render sites) makes exhaustiveness
// checkable in tests.
type DisplayInfo struct {
	Label string
	Color string
}

var statusDisplay = map[ReservationStatus]DisplayInfo{
	StatusPending:   {Label: "En attente", Color: "orange"},
	StatusConfirmed: {Label: "Confirmée", Color: "green"},
	StatusCancelled: {Label: "Annulée", Color: "red"},
	StatusCompleted: {Label: "Terminée", Color: "blue"},
	StatusExpired:   {Label: "Expirée", Color: "grey"},
}

var categoryDisplay = map[ReservationCategory]DisplayInfo{
	CategoryLocalFlight:  {Label: "Vol local", Color: "sky"},
	CategoryCrossCountry: {Label: "Vol voyage", Color: "indigo"},
	CategoryInstruction:  {Label: "Instruction", Color: "violet"},
	CategoryMaintenance:  {Label: "Maintenance", Color: "amber"},
}

// StatusDisplay returns the label/color pair for a status.
// Unknown statuses get a neutral fallback instead of an empty cell.
func StatusDisplay(s ReservationStatus) DisplayInfo {
	if info, ok := statusDisplay[s]; ok {
		return info
	}
	return DisplayInfo{Label: string(s), Color: "grey"}
}

// CategoryDisplay returns the label/color pair for a category
func CategoryDisplay(c ReservationCategory) DisplayInfo {
	if info, ok := categoryDisplay[c]; ok {
		return info
	}
	return DisplayInfo{Label: string(c), Color: "grey"}
}
