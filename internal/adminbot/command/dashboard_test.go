package command

import (
	"sync"
	"testing"
)

// The message-id bookkeeping is hit from handler goroutines and from the
// auto-refresh job at the same time; the race detector flags any unguarded
// access here.
func TestDashboardMsg_ConcurrentAccess(t *testing.T) {
	const chats = 4
	var wg sync.WaitGroup

	for chatId := int64(0); chatId < chats; chatId++ {
		wg.Add(3)
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				setDashboardMsg(id, i)
			}
		}(chatId)
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				dashboardMsgId(id)
			}
		}(chatId)
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				clearDashboardMsg(id)
			}
		}(chatId)
	}
	wg.Wait()

	for chatId := int64(0); chatId < chats; chatId++ {
		clearDashboardMsg(chatId)
	}
	if _, ok := dashboardMsgId(0); ok {
		t.Fatal("cleared chat must not keep a message id")
	}
}

func TestDashboardMsg_ClearReportsStoredId(t *testing.T) {
	setDashboardMsg(99, 7)

	id, ok := clearDashboardMsg(99)
	if !ok || id != 7 {
		t.Fatalf("expected stored id 7, got %v %v", id, ok)
	}
	if _, ok := clearDashboardMsg(99); ok {
		t.Fatal("second clear must find nothing")
	}
}
