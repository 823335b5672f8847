package util

import "testing"

func TestCreateInlineMarup(t *testing.T) {
	markup := CreateInlineMarup(2,
		CreateDefaultButton("a", "A"),
		CreateDefaultButton("b", "B"),
		CreateDefaultButton("c", "C"),
	)

	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(markup.InlineKeyboard))
	}
	if len(markup.InlineKeyboard[0]) != 2 || len(markup.InlineKeyboard[1]) != 1 {
		t.Fatalf("unexpected row layout: %v", markup.InlineKeyboard)
	}
	if markup.InlineKeyboard[0][0].CallbackData != "a" {
		t.Fatalf("unexpected callback: %v", markup.InlineKeyboard[0][0].CallbackData)
	}
}

func TestGenerateNextBackMenu(t *testing.T) {
	markup := GenerateNextBackMenu(2, 5, "next", "back", "close",
		CreateDefaultButton("item:1", "первый"),
		CreateDefaultButton("item:2", "второй"),
	)

	rows := markup.InlineKeyboard
	if len(rows) != 4 {
		t.Fatalf("expected 2 item rows + nav + close, got %d rows", len(rows))
	}
	if len(rows[0]) != 1 || rows[0][0].CallbackData != "item:1" {
		t.Fatalf("items must get one row each, got %v", rows[0])
	}

	nav := rows[2]
	if len(nav) != 3 {
		t.Fatalf("expected back/page/next nav row, got %v", nav)
	}
	if nav[0].CallbackData != "back" || nav[2].CallbackData != "next" {
		t.Fatalf("unexpected nav callbacks: %v", nav)
	}
	if nav[1].Text != "2 / 5" {
		t.Fatalf("unexpected page label: %q", nav[1].Text)
	}
	// the label must not collide with the exact close callback
	if nav[1].CallbackData == "close" {
		t.Fatal("page label must not close the list")
	}

	if rows[3][0].CallbackData != "close" {
		t.Fatalf("last row must close, got %v", rows[3])
	}
}

func TestGenerateNextBackMenu_SinglePageHidesNav(t *testing.T) {
	markup := GenerateNextBackMenu(1, 1, "next", "back", "close",
		CreateDefaultButton("item:1", "первый"),
	)

	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("single page must show item + close only, got %v", markup.InlineKeyboard)
	}
}
