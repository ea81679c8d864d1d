package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/terraincognita07/plantcare/internal/models"
)

const DefaultDigestSchedule = "0 0 8 * * *"

type OpenReminderReader interface {
	ListOpenWithOwner(ctx context.Context) ([]models.OpenReminder, error)
}

type OverdueDigest struct {
	UserID         uint
	Overdue        int
	OldestDueAt    time.Time
	PlantsAffected int
}

// ReminderDigestService periodically logs how many open reminders are past
// due per user. It never writes reminders.
type ReminderDigestService struct {
	reminders OpenReminderReader
	location  *time.Location
	cron      *cron.Cron
	mu        sync.Mutex
	started   bool
}

func NewReminderDigestService(reminders OpenReminderReader, location *time.Location) *ReminderDigestService {
	if location == nil {
		location = time.UTC
	}
	return &ReminderDigestService{
		reminders: reminders,
		location:  location,
		cron:      cron.New(cron.WithLocation(location), cron.WithSeconds()),
	}
}

// Start registers the digest job and starts the scheduler. The job context
// is ctx, so cancelling it aborts an in-flight run.
func (service *ReminderDigestService) Start(ctx context.Context, spec string) error {
	service.mu.Lock()
	defer service.mu.Unlock()
	if service.started {
		return nil
	}
	if spec == "" {
		spec = DefaultDigestSchedule
	}

	if _, err := service.cron.AddFunc(spec, func() {
		if _, err := service.Run(ctx, time.Now()); err != nil {
			log.Printf("reminder digest: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule reminder digest %q: %w", spec, err)
	}
	service.cron.Start()
	service.started = true
	return nil
}

func (service *ReminderDigestService) Stop() {
	service.mu.Lock()
	defer service.mu.Unlock()
	if !service.started {
		return
	}
	<-service.cron.Stop().Done()
	service.started = false
}

func (service *ReminderDigestService) Run(ctx context.Context, now time.Time) ([]OverdueDigest, error) {
	open, err := service.reminders.ListOpenWithOwner(ctx)
	if err != nil {
		return nil, fmt.Errorf("load open reminders: %w", err)
	}

	digests := BuildOverdueDigests(open, now)
	for _, digest := range digests {
		log.Printf("reminder digest: user %d has %d overdue reminder(s) across %d plant(s), oldest due %s",
			digest.UserID,
			digest.Overdue,
			digest.PlantsAffected,
			digest.OldestDueAt.In(service.location).Format("2006-01-02"),
		)
	}
	return digests, nil
}

// BuildOverdueDigests groups reminders due strictly before now by user,
// preserving first-seen user order. Only the newest reminder (highest id) of
// each plant and type counts.
func BuildOverdueDigests(open []models.OpenReminder, now time.Time) []OverdueDigest {
	indexByUser := make(map[uint]int)
	plantsByUser := make(map[uint]map[uint]struct{})
	digests := make([]OverdueDigest, 0)

	for _, reminder := range currentReminders(open) {
		if !reminder.ReminderDate.Before(now) {
			continue
		}
		index, ok := indexByUser[reminder.UserID]
		if !ok {
			index = len(digests)
			indexByUser[reminder.UserID] = index
			plantsByUser[reminder.UserID] = make(map[uint]struct{})
			digests = append(digests, OverdueDigest{UserID: reminder.UserID, OldestDueAt: reminder.ReminderDate})
		}
		digests[index].Overdue++
		if reminder.ReminderDate.Before(digests[index].OldestDueAt) {
			digests[index].OldestDueAt = reminder.ReminderDate
		}
		plantsByUser[reminder.UserID][reminder.UserPlantID] = struct{}{}
	}

	for index := range digests {
		digests[index].PlantsAffected = len(plantsByUser[digests[index].UserID])
	}
	return digests
}

type reminderSlot struct {
	userPlantID  uint
	reminderType models.ReminderType
}

func currentReminders(open []models.OpenReminder) []models.OpenReminder {
	newest := make(map[reminderSlot]uint, len(open))
	for _, reminder := range open {
		slot := reminderSlot{userPlantID: reminder.UserPlantID, reminderType: reminder.Type}
		if reminder.ReminderID > newest[slot] {
			newest[slot] = reminder.ReminderID
		}
	}

	current := make([]models.OpenReminder, 0, len(newest))
	for _, reminder := range open {
		slot := reminderSlot{userPlantID: reminder.UserPlantID, reminderType: reminder.Type}
		if newest[slot] == reminder.ReminderID {
			current = append(current, reminder)
		}
	}
	return current
}
