package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jackzhaolt/plane-ticket-query/internal/errors"
)

// WriterNotifier prints alerts to an io.Writer.
// It is the default sink for CLI runs and a stand-in wherever a real
// transport is not configured.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier writing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify renders every summary separated by rules
func (n *WriterNotifier) Notify(_ context.Context, alert Alert) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%d deal(s) found\n", len(alert.Summaries))
	for _, summary := range alert.Summaries {
		b.WriteString(strings.Repeat("=", 60) + "\n")
		b.WriteString(summary)
	}

	if _, err := io.WriteString(n.w, b.String()); err != nil {
		return errors.Wrap(errors.TypeNotify, "write alert", err)
	}
	return nil
}
