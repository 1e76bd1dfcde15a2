package domain

import "testing"

func TestViewStateDefaultsToFirstTab(t *testing.T) {
	s := NewViewState([]string{"youth", "senior"})
	if s.ActiveTab != "youth" || s.OpenCard != "" {
		t.Fatalf("unexpected initial state %+v", s)
	}
	if empty := NewViewState(nil); empty.ActiveTab != "" {
		t.Fatalf("expected no active tab without categories")
	}
}

func TestViewStateAtMostOneOpenCard(t *testing.T) {
	s := NewViewState([]string{"youth", "senior"})

	s = s.ToggleCard("youth-0")
	if !s.IsOpen("youth-0") {
		t.Fatalf("expected youth-0 open")
	}
	s = s.ToggleCard("youth-1")
	if s.IsOpen("youth-0") || !s.IsOpen("youth-1") {
		t.Fatalf("opening a card must collapse the previous one, got %+v", s)
	}
	s = s.ToggleCard("youth-1")
	if s.OpenCard != "" {
		t.Fatalf("toggling the open card must close it, got %+v", s)
	}
	if s.IsOpen("") {
		t.Fatalf("empty card id is never open")
	}
}

func TestViewStateSelectTab(t *testing.T) {
	s := NewViewState([]string{"youth", "senior"}).ToggleCard("youth-0")

	same := s.SelectTab("youth")
	if same != s {
		t.Fatalf("selecting the active tab must not change state")
	}

	switched := s.SelectTab("senior")
	if switched.ActiveTab != "senior" || switched.OpenCard != "" {
		t.Fatalf("switching tabs must collapse the open card, got %+v", switched)
	}
}
