package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncConsoleHook mirrors every entry to the console off the caller's
// goroutine.
type AsyncConsoleHook struct {
	out     io.Writer
	logChan chan string
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

func NewAsyncConsoleHook(bufferSize int) *AsyncConsoleHook {
	return newAsyncConsoleHook(os.Stdout, bufferSize)
}

func newAsyncConsoleHook(out io.Writer, bufferSize int) *AsyncConsoleHook {
	hook := &AsyncConsoleHook{
		out:     out,
		logChan: make(chan string, bufferSize),
		done:    make(chan struct{}),
	}

	hook.wg.Add(1)
	go hook.processLogs()

	return hook
}

func (h *AsyncConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	select {
	case h.logChan <- line:
	default:
	}

	return nil
}

func (h *AsyncConsoleHook) processLogs() {
	defer h.wg.Done()

	for {
		select {
		case logEntry := <-h.logChan:
			fmt.Fprint(h.out, logEntry)

		case <-h.done:
			for len(h.logChan) > 0 {
				fmt.Fprint(h.out, <-h.logChan)
			}
			return
		}
	}
}

func (h *AsyncConsoleHook) Close() error {
	h.once.Do(func() {
		close(h.done)
		h.wg.Wait()
	})
	return nil
}

func (h *AsyncConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
