package domain

// ViewState is the interactive page state: exactly one active tab and at
// most one open card. The page script mirrors these transitions.
type ViewState struct {
	ActiveTab string `json:"activeTab"`
	OpenCard  string `json:"openCard,omitempty"`
}

func NewViewState(tabOrder []string) ViewState {
	if len(tabOrder) == 0 {
		return ViewState{}
	}
	return ViewState{ActiveTab: tabOrder[0]}
}

// SelectTab activates a tab. Switching tabs collapses the open card.
func (s ViewState) SelectTab(tab string) ViewState {
	if tab == s.ActiveTab {
		return s
	}
	return ViewState{ActiveTab: tab}
}

// ToggleCard closes the card if it is open, otherwise opens it and
// collapses whichever card was open before.
func (s ViewState) ToggleCard(card string) ViewState {
	if s.OpenCard == card {
		s.OpenCard = ""
		return s
	}
	s.OpenCard = card
	return s
}

func (s ViewState) IsOpen(card string) bool {
	return card != "" && s.OpenCard == card
}
