package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBuildKey_ParamOrder(t *testing.T) {
	a := BuildKey("users", map[string]string{"page": "1", "search": "bob"})
	b := BuildKey("users", map[string]string{"search": "bob", "page": "1"})
	if a != b {
		t.Fatalf("keys differ: %v vs %v", a, b)
	}
	if a != "users?page=1&search=bob" {
		t.Fatalf("unexpected key: %v", a)
	}
	if BuildKey("users", nil) != "users" {
		t.Fatal("empty params must return the bare tag")
	}
}

func TestFetch_CachesSecondCall(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	fn := func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	}

	res := Fetch(context.Background(), c, TagUsers, nil, false, fn)
	if res.Err != nil || res.Data != 42 {
		t.Fatalf("unexpected result: %+v", res)
	}
	Fetch(context.Background(), c, TagUsers, nil, false, fn)
	if calls != 1 {
		t.Fatalf("expected 1 backend call, got %d", calls)
	}
}

func TestFetch_ForceSkipsCache(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	fn := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	Fetch(context.Background(), c, TagUsers, nil, false, fn)
	res := Fetch(context.Background(), c, TagUsers, nil, true, fn)
	if calls != 2 {
		t.Fatalf("expected 2 backend calls, got %d", calls)
	}
	if res.Data != 2 {
		t.Fatalf("force must return the refetched value, got %d", res.Data)
	}
}

func TestFetch_DifferentParamsDifferentEntries(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	fn := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	Fetch(context.Background(), c, TagUsers, map[string]string{"page": "1"}, false, fn)
	Fetch(context.Background(), c, TagUsers, map[string]string{"page": "2"}, false, fn)
	if calls != 2 {
		t.Fatalf("pages must not share an entry, got %d calls", calls)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

func TestFetch_StaleWhileError(t *testing.T) {
	c := New(time.Millisecond)
	boom := errors.New("backend down")

	Fetch(context.Background(), c, TagDashboard, nil, false, func(ctx context.Context) (string, error) {
		return "old", nil
	})
	time.Sleep(5 * time.Millisecond)

	res := Fetch(context.Background(), c, TagDashboard, nil, false, func(ctx context.Context) (string, error) {
		return "", boom
	})
	if !res.Stale {
		t.Fatal("expected stale result")
	}
	if res.Data != "old" {
		t.Fatalf("expected old value, got %q", res.Data)
	}
	if !errors.Is(res.Err, boom) {
		t.Fatalf("expected error to ride along, got %v", res.Err)
	}
}

func TestFetch_ErrorWithoutCache(t *testing.T) {
	c := New(time.Minute)
	boom := errors.New("backend down")

	res := Fetch(context.Background(), c, TagDashboard, nil, false, func(ctx context.Context) (string, error) {
		return "", boom
	})
	if res.Stale {
		t.Fatal("nothing cached, result must not be stale")
	}
	if res.Err == nil {
		t.Fatal("expected error")
	}
}

func TestInvalidate_DropsAllParamsOfTag(t *testing.T) {
	c := New(time.Minute)
	fn := func(ctx context.Context) (int, error) { return 1, nil }

	Fetch(context.Background(), c, TagUsers, map[string]string{"page": "1"}, false, fn)
	Fetch(context.Background(), c, TagUsers, map[string]string{"page": "2"}, false, fn)
	Fetch(context.Background(), c, TagRedPackets, nil, false, fn)

	c.Invalidate(TagUsers)
	if c.Len() != 1 {
		t.Fatalf("expected only the red packet entry to survive, got %d", c.Len())
	}
}

// Invalidated entries must not come back through the stale-while-error path.
func TestInvalidate_NoStaleResurrection(t *testing.T) {
	c := New(time.Minute)

	Fetch(context.Background(), c, TagUsers, nil, false, func(ctx context.Context) (string, error) {
		return "old", nil
	})
	c.Invalidate(TagUsers)

	res := Fetch(context.Background(), c, TagUsers, nil, false, func(ctx context.Context) (string, error) {
		return "", errors.New("boom")
	})
	if res.Stale {
		t.Fatal("invalidated entry must be gone for good")
	}
}

func TestInvalidateMutation_LiquidityDropsBothTags(t *testing.T) {
	c := New(time.Minute)
	fn := func(ctx context.Context) (int, error) { return 1, nil }

	Fetch(context.Background(), c, TagLiquidityEntries, nil, false, fn)
	Fetch(context.Background(), c, TagLiquidityStats, nil, false, fn)
	Fetch(context.Background(), c, TagUsers, nil, false, fn)

	c.InvalidateMutation("liquidity.adjust")
	if c.Len() != 1 {
		t.Fatalf("expected both liquidity tags dropped, got %d entries", c.Len())
	}
}

func TestInvalidateMutation_UnknownNameIsNoop(t *testing.T) {
	c := New(time.Minute)
	Fetch(context.Background(), c, TagUsers, nil, false, func(ctx context.Context) (int, error) { return 1, nil })

	c.InvalidateMutation("users.rename")
	if c.Len() != 1 {
		t.Fatal("unknown mutation must not invalidate anything")
	}
}

func TestMutationTags_KnownTags(t *testing.T) {
	known := map[string]bool{
		TagDashboard: true, TagUsers: true, TagRedPackets: true, TagRedPacketStats: true,
		TagTransactions: true, TagTransactionStats: true, TagCheckin: true, TagInvite: true,
		TagTelegramGroups: true, TagTelegramMessages: true, TagTemplates: true, TagReports: true,
		TagSecurityStats: true, TagAlerts: true, TagDevices: true, TagIpSessions: true,
		TagRiskUsers: true, TagLiquidityEntries: true, TagLiquidityStats: true,
	}
	for name, tags := range MutationTags {
		if len(tags) == 0 {
			t.Fatalf("mutation %v has no tags", name)
		}
		for _, tag := range tags {
			if !known[tag] {
				t.Fatalf("mutation %v references unknown tag %v", name, tag)
			}
		}
	}
}
