package dashboard

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCache_GetMissOnUnknownKey(t *testing.T) {
	c := NewCache(time.Minute)
	if _, ok := c.Get("executive"); ok {
		t.Error("expected miss on empty cache")
	}
}

func TestCache_PutThenGet(t *testing.T) {
	c := NewCache(time.Minute)
	resp := emptyResponse()
	c.Put("executive", resp)

	got, ok := c.Get("executive")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != resp {
		t.Error("expected the same response pointer back")
	}
}

func TestCache_EntryExpiresAfterTTL(t *testing.T) {
	c := NewCache(20 * time.Millisecond)
	c.Put("executive", emptyResponse())

	time.Sleep(40 * time.Millisecond)

	if _, ok := c.Get("executive"); ok {
		t.Error("expected entry to be treated as absent after TTL")
	}
}

func TestCache_ConcurrentGetPut(t *testing.T) {
	c := NewCache(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Put(fmt.Sprintf("key-%d", n%4), emptyResponse())
			}
		}(i)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Get(fmt.Sprintf("key-%d", n%4))
			}
		}(i)
	}
	wg.Wait()
}
