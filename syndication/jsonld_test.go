package syndication

import (
	"context"
	"errors"
	"testing"
)

func TestWellFormedWebLinkedData(t *testing.T) {
	ext := newLoadedWFW(t, commentsURL, commentsFeedURL)
	doc := ext.LinkedData()
	if doc["@context"] == nil {
		t.Fatal("expected inline @context")
	}
	comments, ok := doc["wfw:comments"].(map[string]interface{})
	if !ok || comments["@id"] != commentsURL {
		t.Fatalf("unexpected comments projection: %v", doc["wfw:comments"])
	}
	feed, ok := doc["wfw:commentsFeed"].(map[string]interface{})
	if !ok || feed["@id"] != commentsFeedURL {
		t.Fatalf("unexpected commentsFeed projection: %v", doc["wfw:commentsFeed"])
	}
}

func TestWellFormedWebLinkedDataSparse(t *testing.T) {
	ext := newLoadedWFW(t, commentsURL, "")
	doc := ext.LinkedData()
	if _, present := doc["wfw:commentsFeed"]; present {
		t.Fatal("expected unset field to be omitted from projection")
	}
}

func TestExpandLinkedData(t *testing.T) {
	ext := newLoadedWFW(t, commentsURL, commentsFeedURL)
	expanded, err := ExpandLinkedData(context.Background(), ext.LinkedData(), JSONLDOptions{})
	if err != nil {
		t.Fatalf("expand error: %v", err)
	}
	if len(expanded) != 1 {
		t.Fatalf("expected one expanded node, got %d", len(expanded))
	}
	node, ok := expanded[0].(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected expanded node type: %T", expanded[0])
	}
	if _, present := node[WellFormedWebNamespace+wfwCommentsElement]; !present {
		t.Fatalf("expected expanded comments property, got %v", node)
	}
	if _, present := node[WellFormedWebNamespace+wfwCommentsFeedElement]; !present {
		t.Fatalf("expected expanded commentsFeed property, got %v", node)
	}
}

func TestCompactLinkedData(t *testing.T) {
	ext := newLoadedWFW(t, commentsURL, "")
	jsonldContext := map[string]interface{}{
		"discussion": map[string]interface{}{
			"@id":   WellFormedWebNamespace + wfwCommentsElement,
			"@type": "@id",
		},
	}
	compacted, err := CompactLinkedData(context.Background(), ext.LinkedData(), jsonldContext, JSONLDOptions{})
	if err != nil {
		t.Fatalf("compact error: %v", err)
	}
	if compacted["discussion"] != commentsURL {
		t.Fatalf("unexpected compaction: %v", compacted)
	}
}

func TestLinkedDataNilInputs(t *testing.T) {
	if _, err := ExpandLinkedData(context.Background(), nil, JSONLDOptions{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := CompactLinkedData(context.Background(), map[string]interface{}{}, nil, JSONLDOptions{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLinkedDataCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ext := newLoadedWFW(t, commentsURL, "")
	if _, err := ExpandLinkedData(ctx, ext.LinkedData(), JSONLDOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSlashLinkedData(t *testing.T) {
	ext := NewSlashExtension()
	ext.Context().SetSection("technology")
	if err := ext.Context().SetComments(42); err != nil {
		t.Fatalf("set comments: %v", err)
	}
	ext.Context().SetHitParade([]int{42, 30, 5})
	doc := ext.LinkedData()
	if doc["slash:section"] != "technology" {
		t.Fatalf("unexpected section projection: %v", doc["slash:section"])
	}
	if doc["slash:comments"] != 42 {
		t.Fatalf("unexpected comments projection: %v", doc["slash:comments"])
	}
	parade, ok := doc["slash:hit_parade"].([]interface{})
	if !ok || len(parade) != 3 || parade[0] != 42 || parade[2] != 5 {
		t.Fatalf("unexpected hit parade projection: %v", doc["slash:hit_parade"])
	}

	sparse := NewSlashExtension()
	if _, present := sparse.LinkedData()["slash:hit_parade"]; present {
		t.Fatal("expected unset hit parade to be omitted from projection")
	}
}
