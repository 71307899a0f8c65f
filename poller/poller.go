// Package poller implements the kill event polling loop. On a fixed
// interval it refreshes the tracked guild's roster, fetches the recent
// event feed of every member, and turns each previously unseen event into
// a stored row and a channel notification.
package poller

import (
	"context"
	"time"

	"killboard/albion"
	"killboard/metrics"
	"killboard/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// GameAPI is the slice of the Albion client the poller needs
type GameAPI interface {
	GuildMembers(ctx context.Context, guildID string) ([]albion.Player, error)
	PlayerEvents(ctx context.Context, playerID string, limit int) ([]albion.Event, error)
}

// KillEventStore persists occurrences
type KillEventStore interface {
	InsertIfAbsent(ctx context.Context, event *models.KillEvent) (bool, error)
}

// RosterStore caches the guild roster
type RosterStore interface {
	UpsertAll(ctx context.Context, members []*models.GuildMember) error
}

// ChannelResolver yields the channels kill notifications go to
type ChannelResolver interface {
	ListKillboardChannels(ctx context.Context) ([]int64, error)
}

// Notifier delivers one occurrence to one channel
type Notifier interface {
	Notify(ctx context.Context, channelID int64, occ Occurrence) error
}

// Occurrence is one kill or death from the perspective of a single guild
// member. A fight between two members of the same guild yields two
// occurrences from one upstream event.
type Occurrence struct {
	Event      albion.Event
	MemberID   string
	MemberName string
	IsKill     bool
}

// Record converts the occurrence to its storage row
func (o Occurrence) Record() *models.KillEvent {
	return &models.KillEvent{
		EventID:        o.Event.EventID,
		KillerName:     o.Event.Killer.Name,
		KillerID:       o.Event.Killer.ID,
		VictimName:     o.Event.Victim.Name,
		VictimID:       o.Event.Victim.ID,
		Fame:           o.Event.TotalVictimKillFame,
		EventTime:      o.Event.TimeStamp,
		InvolvedMember: o.MemberName,
		IsKill:         o.IsKill,
	}
}

// Config holds the poller's tuning knobs
type Config struct {
	GuildID          string
	Interval         time.Duration
	MemberFetchDelay time.Duration
	EventFetchLimit  int
	SeenKeyCap       int
	StartupDelay     time.Duration
}

// Poller drives the polling loop. Ticks run sequentially on a single
// goroutine, so a slow tick delays the next one instead of overlapping it.
type Poller struct {
	cfg      Config
	api      GameAPI
	kills    KillEventStore
	roster   RosterStore
	channels ChannelResolver
	notifier Notifier
	metrics  *metrics.Manager

	lastCheck time.Time
	seen      *seenSet
	now       func() time.Time
}

// New creates a poller. Events older than the moment of construction are
// never announced.
func New(cfg Config, api GameAPI, kills KillEventStore, roster RosterStore, channels ChannelResolver, notifier Notifier, m *metrics.Manager) *Poller {
	return &Poller{
		cfg:       cfg,
		api:       api,
		kills:     kills,
		roster:    roster,
		channels:  channels,
		notifier:  notifier,
		metrics:   m,
		lastCheck: time.Now(),
		seen:      newSeenSet(cfg.SeenKeyCap),
		now:       time.Now,
	}
}

// Start runs the polling loop until ctx is cancelled. It blocks, so call
// it from its own goroutine.
func (p *Poller) Start(ctx context.Context) {
	log.WithFields(log.Fields{
		"guild_id": p.cfg.GuildID,
		"interval": p.cfg.Interval,
	}).Info("starting kill event poller")

	select {
	case <-ctx.Done():
		return
	case <-time.After(p.cfg.StartupDelay):
	}
	p.runTick(ctx)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("kill event poller stopped")
			return
		case <-ticker.C:
			p.runTick(ctx)
		}
	}
}

func (p *Poller) runTick(ctx context.Context) {
	tickLog := log.WithField("tick_id", uuid.New().String())
	p.metrics.TicksStarted.Inc()
	start := p.now()

	channels, err := p.channels.ListKillboardChannels(ctx)
	if err != nil {
		tickLog.WithError(err).Error("failed to resolve killboard channels, skipping tick")
		p.metrics.TicksAborted.Inc()
		return
	}
	if len(channels) == 0 {
		tickLog.Debug("no killboard channels configured, skipping tick")
		p.metrics.TicksAborted.Inc()
		return
	}

	members, err := p.api.GuildMembers(ctx, p.cfg.GuildID)
	if err != nil {
		tickLog.WithError(err).Error("failed to fetch guild roster, skipping tick")
		p.metrics.TicksAborted.Inc()
		return
	}
	p.metrics.RosterSize.Set(float64(len(members)))

	rosterRows := make([]*models.GuildMember, 0, len(members))
	rosterNames := make(map[string]string, len(members))
	for _, member := range members {
		rosterRows = append(rosterRows, &models.GuildMember{
			ID:      member.ID,
			Name:    member.Name,
			GuildID: member.GuildID,
		})
		rosterNames[member.ID] = member.Name
	}
	if err := p.roster.UpsertAll(ctx, rosterRows); err != nil {
		// Stale cache is tolerable, the tick still processes events.
		tickLog.WithError(err).Error("failed to refresh roster cache")
	}

	for i, member := range members {
		if i > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.cfg.MemberFetchDelay):
			}
		}
		p.pollMember(ctx, tickLog, member, rosterNames, channels)
	}

	p.lastCheck = p.now()
	p.seen.Truncate()
	p.metrics.SeenKeys.Set(float64(p.seen.Len()))
	p.metrics.TickDuration.Observe(p.now().Sub(start).Seconds())
	tickLog.WithFields(log.Fields{
		"members":  len(members),
		"channels": len(channels),
	}).Debug("tick complete")
}

// pollMember fetches one member's event feed and processes every event
// that passes the admission filter. A fetch failure is logged and the
// member is skipped, the rest of the roster is unaffected.
func (p *Poller) pollMember(ctx context.Context, tickLog *log.Entry, member albion.Player, rosterNames map[string]string, channels []int64) {
	memberLog := tickLog.WithField("member", member.Name)

	events, err := p.api.PlayerEvents(ctx, member.ID, p.cfg.EventFetchLimit)
	if err != nil {
		memberLog.WithError(err).Error("failed to fetch member events")
		p.metrics.MemberFetchErrors.Inc()
		return
	}

	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			memberLog.WithError(err).Warn("dropping malformed event")
			p.metrics.EventsFiltered.WithLabelValues(metrics.FilterReasonMalformed).Inc()
			continue
		}
		if ev.TimeStamp.Before(p.lastCheck) {
			p.metrics.EventsFiltered.WithLabelValues(metrics.FilterReasonStale).Inc()
			continue
		}
		if !p.seen.Add(eventKey(ev.EventID, ev.TimeStamp)) {
			p.metrics.EventsFiltered.WithLabelValues(metrics.FilterReasonDuplicate).Inc()
			continue
		}
		p.metrics.EventsAdmitted.Inc()

		for _, occ := range classify(ev, rosterNames) {
			p.handleOccurrence(ctx, memberLog, occ, channels)
		}
	}
}

func (p *Poller) handleOccurrence(ctx context.Context, logger *log.Entry, occ Occurrence, channels []int64) {
	inserted, err := p.kills.InsertIfAbsent(ctx, occ.Record())
	if err != nil {
		logger.WithError(err).WithField("event_id", occ.Event.EventID).Error("failed to store kill event")
	} else if inserted {
		p.metrics.OccurrencesPersisted.Inc()
	}

	// Notification is not gated on the insert outcome.
	for _, channelID := range channels {
		if err := p.notifier.Notify(ctx, channelID, occ); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"event_id":   occ.Event.EventID,
				"channel_id": channelID,
			}).Error("failed to send kill notification")
			p.metrics.NotifyFailures.Inc()
		}
	}
}

// classify matches an admitted event against the roster. Each guild member
// appearing in it yields one occurrence: a kill when the member is the
// killer, a death when the member is the victim.
func classify(ev albion.Event, rosterNames map[string]string) []Occurrence {
	var occurrences []Occurrence
	if name, ok := rosterNames[ev.Killer.ID]; ok {
		occurrences = append(occurrences, Occurrence{
			Event:      ev,
			MemberID:   ev.Killer.ID,
			MemberName: name,
			IsKill:     true,
		})
	}
	if name, ok := rosterNames[ev.Victim.ID]; ok {
		occurrences = append(occurrences, Occurrence{
			Event:      ev,
			MemberID:   ev.Victim.ID,
			MemberName: name,
			IsKill:     false,
		})
	}
	return occurrences
}
