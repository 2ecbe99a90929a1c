// Email worker: consumes queued blog-created notifications and delivers
// them over SMTP. Runs separately from the API so email never blocks a
// request.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Praveenkumar07007/BlogApp/internal/app"
	"github.com/Praveenkumar07007/BlogApp/internal/config"
	"github.com/Praveenkumar07007/BlogApp/internal/email"
	"github.com/Praveenkumar07007/BlogApp/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	rdb, err := app.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	sender := email.NewSender(cfg.SMTP)
	if sender == nil {
		log.Printf("SMTP not configured, tasks will be consumed and dropped")
	}
	queue := tasks.NewQueue(rdb)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("email worker started")
	for {
		task, ok, err := queue.DequeueEmail(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				break
			}
			log.Printf("dequeue: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if !ok {
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if sender == nil {
			log.Printf("task %s dropped (SMTP not configured)", task.ID)
			continue
		}
		if err := sender.SendBlogCreated(task.Title, task.Description, task.Recipient); err != nil {
			log.Printf("task %s: %v", task.ID, err)
			continue
		}
		log.Printf("task %s: email sent to %s", task.ID, task.Recipient)
	}
	log.Printf("email worker stopped")
}
