package bot

import (
	"context"
	"testing"
	"time"
)

func TestSendSequenceOrderAndKinds(t *testing.T) {
	out := newFakeOutbound()
	d := instantDispatcher(out)

	replies := []Reply{
		{Text: "first"},
		{File: "./cardapio.pdf", Caption: "menu"},
		{Text: "last"},
	}
	if err := d.SendSequence(context.Background(), "c1", replies); err != nil {
		t.Fatalf("SendSequence err: %v", err)
	}

	items := out.items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].text != "first" || items[2].text != "last" {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[1].file != "./cardapio.pdf" || items[1].caption != "menu" {
		t.Fatalf("attachment not dispatched as file: %+v", items[1])
	}
	for _, item := range items {
		if item.to != "c1" {
			t.Fatalf("wrong recipient: %+v", item)
		}
	}
}

func TestSendSequenceAbortsOnFailure(t *testing.T) {
	out := newFakeOutbound()
	out.failAfter = 1
	d := instantDispatcher(out)

	replies := []Reply{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	err := d.SendSequence(context.Background(), "c1", replies)
	if err == nil {
		t.Fatal("expected an error from the second send")
	}

	if items := out.items(); len(items) != 1 {
		t.Fatalf("remaining items must be aborted, got %d sent", len(items))
	}
}

func TestPauseZeroDelayReturnsImmediately(t *testing.T) {
	if err := pause(context.Background(), 0); err != nil {
		t.Fatalf("pause err: %v", err)
	}
}

func TestPauseHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := pause(ctx, time.Minute); err == nil {
		t.Fatal("expected a context error")
	}
}

func TestSendSequenceStopsWhenContextCancelled(t *testing.T) {
	out := newFakeOutbound()
	d := NewDispatcher(out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.SendSequence(ctx, "c1", []Reply{{Delay: time.Minute, Text: "a"}})
	if err == nil {
		t.Fatal("expected a context error")
	}
	if len(out.items()) != 0 {
		t.Fatal("nothing may be sent after cancellation")
	}
}
