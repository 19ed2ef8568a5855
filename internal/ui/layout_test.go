package ui

import (
	"image"
	"reflect"
	"testing"

	"gridsnake/internal/core"
)

func TestNoticeLayoutCentred(t *testing.T) {
	view := image.Rect(0, 0, 300, 300)
	box, button := noticeLayout(view)
	if box.Dx() != noticeWidth || box.Dy() != noticeHeight {
		t.Fatalf("box = %v", box)
	}
	if box.Min.X != 50 || box.Min.Y != 95 {
		t.Fatalf("box not centred: %v", box)
	}
	if !button.In(box) {
		t.Fatalf("button %v outside box %v", button, box)
	}
	if button.Min.X-box.Min.X != box.Max.X-button.Max.X {
		t.Fatalf("button not centred: %v in %v", button, box)
	}
}

func TestNoticeLayoutShrinksToView(t *testing.T) {
	view := image.Rect(10, 10, 70, 50)
	box, button := noticeLayout(view)
	if !box.In(view) {
		t.Fatalf("box %v escapes view %v", box, view)
	}
	if !button.In(box) {
		t.Fatalf("button %v outside box %v", button, box)
	}
}

func TestPointInRect(t *testing.T) {
	r := image.Rect(10, 10, 20, 20)
	if !pointInRect(10, 10, r) || !pointInRect(19, 19, r) {
		t.Fatal("corners inside the rectangle were rejected")
	}
	if pointInRect(20, 15, r) || pointInRect(9, 15, r) {
		t.Fatal("points outside the rectangle were accepted")
	}
}

func TestHUDLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Game",
			Params: []core.Parameter{
				{Key: "score", Label: "Score", Type: core.ParamTypeInt, Value: "3"},
				{Key: "sound", Label: "Sound", Type: core.ParamTypeBool, Value: "true"},
			},
			Summary: "ended by wall",
		},
		{
			Name:   "Snake",
			Params: []core.Parameter{{Key: "head", Label: "Head", Type: core.ParamTypeString}},
		},
	}}
	want := []string{
		"Game",
		"  Score: 3",
		"  Sound: on",
		"  ended by wall",
		"",
		"Snake",
		"  Head: --",
	}
	if got := hudLines(snap); !reflect.DeepEqual(got, want) {
		t.Fatalf("hudLines = %q, want %q", got, want)
	}
}
