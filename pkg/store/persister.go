package store

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/pkg/persistence"
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const batchTimeout = 30 * time.Second

type (
	opKind int

	// persister is a dirty-partition queue drained by a single goroutine. For
	// each partition only the latest pending operation is kept. A wipe clears
	// every partition before the saves queued after it.
	persister struct {
		gateway  persistence.Gateway
		snapshot func([]domain.Partition) domain.StateBundle

		mu       sync.Mutex
		wipe     bool
		pending  map[domain.Partition]opKind
		queued   uint64
		written  uint64
		progress chan struct{}
		closed   bool

		wake chan struct{}
		quit chan struct{}
		done chan struct{}
	}
)

const (
	opSave opKind = iota
	opRemove
)

func newPersister(gateway persistence.Gateway, snapshot func([]domain.Partition) domain.StateBundle) *persister {
	return &persister{
		gateway:  gateway,
		snapshot: snapshot,
		pending:  map[domain.Partition]opKind{},
		progress: make(chan struct{}),
		wake:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (p *persister) save(partitions ...domain.Partition) {
	p.enqueue(false, opSave, partitions)
}

func (p *persister) remove(partitions ...domain.Partition) {
	p.enqueue(false, opRemove, partitions)
}

// wipeAll drops everything pending and clears all partitions on the next drain.
func (p *persister) wipeAll() {
	p.enqueue(true, opRemove, nil)
}

func (p *persister) enqueue(wipe bool, kind opKind, partitions []domain.Partition) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		log.Warnf("store: persister closed, dropping write of %v", partitions)
		return
	}
	if wipe {
		p.wipe = true
		clear(p.pending)
	}
	for _, partition := range partitions {
		p.pending[partition] = kind
	}
	p.queued++
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *persister) run() {
	defer close(p.done)
	for {
		select {
		case <-p.wake:
			p.drain()
		case <-p.quit:
			p.drain()
			return
		}
	}
}

func (p *persister) drain() {
	p.mu.Lock()
	wipe, pending, batch := p.wipe, p.pending, p.queued
	p.wipe = false
	p.pending = map[domain.Partition]opKind{}
	p.mu.Unlock()

	if wipe || len(pending) > 0 {
		p.write(wipe, pending)
	}

	p.mu.Lock()
	if batch > p.written {
		p.written = batch
		close(p.progress)
		p.progress = make(chan struct{})
	}
	p.mu.Unlock()
}

// write applies one batch. Failures are logged by the gateway and dropped.
func (p *persister) write(wipe bool, pending map[domain.Partition]opKind) {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	if wipe {
		_ = p.gateway.ClearAll(ctx)
	}

	var saves []domain.Partition
	for _, partition := range domain.AllPartitions {
		kind, ok := pending[partition]
		switch {
		case !ok:
		case kind == opRemove:
			_ = p.gateway.ClearPartition(ctx, partition)
		default:
			saves = append(saves, partition)
		}
	}

	if len(saves) > 0 {
		_ = p.gateway.SavePartitions(ctx, p.snapshot(saves), saves...)
	}
}

func (p *persister) flush(ctx context.Context) error {
	p.mu.Lock()
	target := p.queued
	p.mu.Unlock()

	for {
		p.mu.Lock()
		if p.written >= target {
			p.mu.Unlock()
			return nil
		}
		progress := p.progress
		p.mu.Unlock()

		select {
		case <-progress:
		case <-p.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *persister) close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.quit)
	<-p.done
}
