package syndication

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFragmentSingleRoot(t *testing.T) {
	node, err := ParseFragment(strings.NewReader(`<item><title>hello &amp; goodbye</title></item>`))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(node.Children) != 1 {
		t.Fatalf("expected one root element, got %d", len(node.Children))
	}
	item := node.Children[0]
	if item.Local != "item" {
		t.Fatalf("unexpected root element: %s", item.Local)
	}
	title := item.Find("", "title")
	if title == nil {
		t.Fatal("expected title element")
	}
	if title.Text() != "hello & goodbye" {
		t.Fatalf("unexpected text: %q", title.Text())
	}
}

func TestParseFragmentMultipleRoots(t *testing.T) {
	input := "<a>1</a>\n<b>2</b>"
	node, err := ParseFragment(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected two root elements, got %d", len(node.Children))
	}
	if node.Children[0].Local != "a" || node.Children[1].Local != "b" {
		t.Fatalf("unexpected roots: %s, %s", node.Children[0].Local, node.Children[1].Local)
	}
}

func TestParseFragmentResolvesDeclaredNamespaces(t *testing.T) {
	input := `<item xmlns:wfw="http://wellformedweb.org/CommentAPI/"><wfw:comments>x</wfw:comments></item>`
	node, err := ParseFragment(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	comments := node.Find("http://wellformedweb.org/CommentAPI/", "comments")
	if comments == nil {
		t.Fatal("expected namespace-resolved comments element")
	}
}

func TestParseFragmentKeepsUndeclaredPrefix(t *testing.T) {
	node, err := ParseFragment(strings.NewReader(`<wfw:comments>x</wfw:comments>`))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if node.Find("wfw", "comments") == nil {
		t.Fatal("expected literal-prefix element for undeclared namespace")
	}
}

func TestParseFragmentNilReader(t *testing.T) {
	if _, err := ParseFragment(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseFragmentDepthLimit(t *testing.T) {
	_, err := ParseFragment(strings.NewReader(`<a><b><c/></b></a>`), OptMaxDepth(2))
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got %v", err)
	}
	if Code(err) != ErrCodeDepthExceeded {
		t.Fatalf("unexpected code: %s", Code(err))
	}
}

func TestParseFragmentSizeLimit(t *testing.T) {
	input := `<item>` + strings.Repeat("x", 1024) + `</item>`
	_, err := ParseFragment(strings.NewReader(input), OptMaxFragmentBytes(64))
	if !errors.Is(err, ErrFragmentTooLarge) {
		t.Fatalf("expected ErrFragmentTooLarge, got %v", err)
	}
	if Code(err) != ErrCodeFragmentTooLarge {
		t.Fatalf("unexpected code: %s", Code(err))
	}
}

func TestParseFragmentExactSizeLimit(t *testing.T) {
	input := `<item><title>exactly</title></item>`
	node, err := ParseFragment(strings.NewReader(input), OptMaxFragmentBytes(int64(len(input))))
	if err != nil {
		t.Fatalf("expected input at exactly the limit to parse, got %v", err)
	}
	if len(node.Children) != 1 || node.Children[0].Local != "item" {
		t.Fatal("expected parsed root element")
	}
	_, err = ParseFragment(strings.NewReader(input), OptMaxFragmentBytes(int64(len(input))-1))
	if !errors.Is(err, ErrFragmentTooLarge) {
		t.Fatalf("expected ErrFragmentTooLarge one byte under, got %v", err)
	}
}

func TestParseFragmentMalformedInput(t *testing.T) {
	_, err := ParseFragment(strings.NewReader(`<item><unclosed></item>`))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if Code(err) != ErrCodeParseError {
		t.Fatalf("unexpected code: %s", Code(err))
	}
}

func TestFindDocumentOrder(t *testing.T) {
	input := `<item><inner><x>first</x></inner><x>second</x></item>`
	node, err := ParseFragment(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	x := node.Find("", "x")
	if x == nil || x.Text() != "first" {
		t.Fatalf("expected first element in document order, got %v", x)
	}
}
