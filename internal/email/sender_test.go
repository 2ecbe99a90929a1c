package email

import (
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	msg := buildMessage("app@x.com", "alice@x.com", "My Post", "Hello world")

	if !strings.Contains(msg, "Subject: New Blog Created: My Post\r\n") {
		t.Fatalf("subject missing or wrong:\n%s", msg)
	}
	if !strings.Contains(msg, "To: alice@x.com\r\n") {
		t.Fatalf("recipient header missing:\n%s", msg)
	}
	if !strings.Contains(msg, "Title: My Post") || !strings.Contains(msg, "Description: Hello world") {
		t.Fatalf("body missing blog details:\n%s", msg)
	}
	// Headers and body must be separated by a blank line.
	if !strings.Contains(msg, "\r\n\r\n") {
		t.Fatalf("missing header/body separator:\n%s", msg)
	}
}
