package graceful

import (
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Stop(fn func()) {
	// graceful stop
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done
	signal.Stop(done)
	fn()
}

func StopWithTime(duration time.Duration, fn func()) {
	Stop(fn)
	time.Sleep(duration)
}
