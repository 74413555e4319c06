package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/primstore/store"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	CorruptEvery  uint64
	RejectedEvery uint64
	// LogEmptySweeps also logs sweeps that removed nothing.
	LogEmptySweeps bool
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	corruptCtr  atomic.Uint64
	rejectedCtr atomic.Uint64
}

var _ store.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CorruptEntry(storageKey, where string) {
	if h.l == nil || !sample(h.opts.CorruptEvery, &h.corruptCtr) {
		return
	}
	h.l.Warn("primstore.corrupt_entry",
		"key", h.redact(storageKey),
		"where", where)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil || !sample(h.opts.RejectedEvery, &h.rejectedCtr) {
		return
	}
	h.l.Warn("primstore.provider_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) ExpiredSwept(ns string, removed int) {
	if h.l == nil || (removed == 0 && !h.opts.LogEmptySweeps) {
		return
	}
	h.l.Info("primstore.expired_swept",
		"ns", ns,
		"removed", removed)
}

func (h *Hooks) SweepDeleteError(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("primstore.sweep_delete_error",
		"key", h.redact(storageKey),
		"err", err)
}
