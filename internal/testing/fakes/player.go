// Package fakes provides in-memory stand-ins for host game objects in tests.
package fakes

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
)

// Player records every effect applied to it
type Player struct {
	mu        sync.Mutex
	id        uuid.UUID
	name      string
	Health    float64
	MaxHealth float64
	FireTicks int
	Messages  []string
}

var (
	_ domain.Damageable = (*Player)(nil)
	_ domain.Healable   = (*Player)(nil)
	_ domain.Ignitable  = (*Player)(nil)
	_ domain.Messenger  = (*Player)(nil)
)

// NewPlayer returns a player at full health (20)
func NewPlayer(name string) *Player {
	return &Player{id: uuid.New(), name: name, Health: 20, MaxHealth: 20}
}

func (p *Player) UniqueID() uuid.UUID { return p.id }
func (p *Player) Name() string        { return p.name }

func (p *Player) Damage(amount float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

func (p *Player) Heal(amount float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

func (p *Player) SetFireTicks(ticks int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.FireTicks = ticks
}

func (p *Player) SendMessage(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Messages = append(p.Messages, message)
}

// Bystander is an actor that supports no effects
type Bystander struct {
	ID uuid.UUID
}

func (b Bystander) UniqueID() uuid.UUID { return b.ID }
func (b Bystander) Name() string        { return "bystander" }

// Clock is a manually advanced time source
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts at a fixed instant
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
