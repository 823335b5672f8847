package util

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{45, 10, 5},
		{50, 10, 5},
		{3, 0, 1},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.pageSize); got != c.want {
			t.Fatalf("TotalPages(%v, %v) = %v, want %v", c.total, c.pageSize, got, c.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page     int
		total    int64
		pageSize int
		want     int
	}{
		{0, 45, 10, 1},
		{-3, 45, 10, 1},
		{1, 45, 10, 1},
		{5, 45, 10, 5},
		{9, 45, 10, 5},
		{2, 0, 10, 1},
	}
	for _, c := range cases {
		if got := ClampPage(c.page, c.total, c.pageSize); got != c.want {
			t.Fatalf("ClampPage(%v, %v, %v) = %v, want %v", c.page, c.total, c.pageSize, got, c.want)
		}
	}
}

func TestNextPage(t *testing.T) {
	if got := NextPage(1, 45, 10); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := NextPage(5, 45, 10); got != 5 {
		t.Fatalf("last page must stay put, got %v", got)
	}
	if got := NextPage(1, 5, 10); got != 1 {
		t.Fatalf("single page must stay put, got %v", got)
	}
}

func TestBackPage(t *testing.T) {
	if got := BackPage(3); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := BackPage(1); got != 1 {
		t.Fatalf("first page must stay put, got %v", got)
	}
}
