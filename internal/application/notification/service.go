package notification

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/gcn-portal/internal/domain"
	"github.com/gcn-portal/internal/pkg/id"
	"github.com/gcn-portal/internal/pkg/topic"
	"github.com/gcn-portal/internal/pkg/validate"
	"golang.org/x/sync/errgroup"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldName      = "name"
	fieldRecipient = "recipient"
	fieldTopics    = "topics"
	fieldActive    = "active"
)

const (
	testSubject = "GCN Notices test message"
	testBody    = "This is a test message from the GCN Notices email service.\r\n\r\n" +
		"If you received it, your address can receive GCN notices.\r\n"
)

// Service manages a caller's email notifications and keeps the topic-keyed
// subscription view in step with them.
type Service interface {
	Create(ctx context.Context, caller domain.Identity, in domain.EmailNotificationInput) (*domain.EmailNotification, error)
	List(ctx context.Context, caller domain.Identity) ([]domain.EmailNotificationVM, error)
	Get(ctx context.Context, caller domain.Identity, uuid string) (*domain.EmailNotificationVM, error)
	Update(ctx context.Context, caller domain.Identity, in domain.EmailNotificationInput) error
	Delete(ctx context.Context, caller domain.Identity, uuid string) error
	Recipients(ctx context.Context, topic string) ([]string, error)
	SendTest(ctx context.Context, caller domain.Identity, recipient string) error
}

type notificationStore interface {
	Put(ctx context.Context, n *domain.EmailNotification) error
	Get(ctx context.Context, sub, uuid string) (*domain.EmailNotification, error)
	ListBySub(ctx context.Context, sub string) ([]domain.EmailNotification, error)
	Update(ctx context.Context, sub, uuid string, updates map[string]interface{}) error
	Delete(ctx context.Context, sub, uuid string) error
}

type subscriptionStore interface {
	Put(ctx context.Context, row *domain.SubscriptionRow) error
	ListByUUID(ctx context.Context, uuid string) ([]domain.SubscriptionRow, error)
	ListByTopic(ctx context.Context, topic string) ([]domain.SubscriptionRow, error)
	Delete(ctx context.Context, uuid, topic string) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type service struct {
	repo    notificationStore
	subRepo subscriptionStore
	mailer  mailer
	now     func() time.Time
}

type ServiceDeps struct {
	NotificationRepo notificationStore
	SubscriptionRepo subscriptionStore
	Mailer           mailer
	Now              func() time.Time // defaults to time.Now
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:    deps.NotificationRepo,
		subRepo: deps.SubscriptionRepo,
		mailer:  deps.Mailer,
		now:     now,
	}
}

func (s *service) Create(ctx context.Context, caller domain.Identity, in domain.EmailNotificationInput) (*domain.EmailNotification, error) {
	if err := requireSub(caller); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrValidation)
	}
	if err := validate.Var("topics", in.Topics, "required,min=1"); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrValidation)
	}

	n := &domain.EmailNotification{
		Sub:       caller.Sub,
		UUID:      id.New(),
		Name:      in.Name,
		Recipient: in.Recipient,
		Topics:    in.Topics,
		Active:    true,
		Created:   s.now().UnixMilli(),
	}

	var g errgroup.Group
	g.Go(func() error { return s.repo.Put(ctx, n) })
	s.putRows(ctx, &g, n.UUID, n.Recipient, n.Topics)
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("create email notification: %w", err)
	}
	return n, nil
}

func (s *service) List(ctx context.Context, caller domain.Identity) ([]domain.EmailNotificationVM, error) {
	if err := requireSub(caller); err != nil {
		return nil, err
	}
	items, err := s.repo.ListBySub(ctx, caller.Sub)
	if err != nil {
		return nil, err
	}
	vms := make([]domain.EmailNotificationVM, 0, len(items))
	for _, n := range items {
		vms = append(vms, annotate(n))
	}
	sort.SliceStable(vms, func(i, j int) bool { return vms[i].Created < vms[j].Created })
	return vms, nil
}

func (s *service) Get(ctx context.Context, caller domain.Identity, uuid string) (*domain.EmailNotificationVM, error) {
	if err := requireSub(caller); err != nil {
		return nil, err
	}
	n, err := s.repo.Get(ctx, caller.Sub, uuid)
	if err != nil {
		return nil, err
	}
	vm := annotate(*n)
	return &vm, nil
}

// Update overwrites the editable fields and re-derives the view rows for the
// record. An input without a uuid is ignored. Unlike Create, an empty topic
// list is accepted and leaves the record with no view rows.
func (s *service) Update(ctx context.Context, caller domain.Identity, in domain.EmailNotificationInput) error {
	if err := requireSub(caller); err != nil {
		return err
	}
	if in.UUID == "" {
		return nil
	}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%s: %w", err, domain.ErrValidation)
	}
	topics := in.Topics
	if topics == nil {
		topics = []string{}
	}

	updates := map[string]interface{}{
		fieldName:      in.Name,
		fieldRecipient: in.Recipient,
		fieldTopics:    topics,
		fieldActive:    in.Active,
	}
	if err := s.repo.Update(ctx, caller.Sub, in.UUID, updates); err != nil {
		return err
	}

	if err := s.clearRows(ctx, in.UUID); err != nil {
		return fmt.Errorf("update email notification: %w", err)
	}
	if !in.Active {
		return nil
	}
	var g errgroup.Group
	s.putRows(ctx, &g, in.UUID, in.Recipient, topics)
	if err := g.Wait(); err != nil {
		return fmt.Errorf("update email notification: %w", err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, caller domain.Identity, uuid string) error {
	if err := requireSub(caller); err != nil {
		return err
	}
	if _, err := s.repo.Get(ctx, caller.Sub, uuid); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, caller.Sub, uuid); err != nil {
		return err
	}
	if err := s.clearRows(ctx, uuid); err != nil {
		return fmt.Errorf("delete email notification: %w", err)
	}
	return nil
}

// Recipients lists every address subscribed to topic, each once.
func (s *service) Recipients(ctx context.Context, t string) ([]string, error) {
	if t == "" {
		return nil, fmt.Errorf("topic must not be empty: %w", domain.ErrValidation)
	}
	rows, err := s.subRepo.ListByTopic(ctx, t)
	if err != nil {
		return nil, err
	}
	recipients := make([]string, 0, len(rows))
	for _, r := range rows {
		recipients = append(recipients, r.Recipient)
	}
	slices.Sort(recipients)
	return slices.Compact(recipients), nil
}

func (s *service) SendTest(ctx context.Context, caller domain.Identity, recipient string) error {
	if err := requireSub(caller); err != nil {
		return err
	}
	if err := validate.Var("recipient", recipient, "required,email"); err != nil {
		return fmt.Errorf("%s: %w", err, domain.ErrValidation)
	}
	return s.mailer.SendEmail(recipient, testSubject, testBody)
}

// clearRows deletes every view row derived from uuid.
func (s *service) clearRows(ctx context.Context, uuid string) error {
	rows, err := s.subRepo.ListByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	var g errgroup.Group
	for _, r := range rows {
		g.Go(func() error { return s.subRepo.Delete(ctx, r.UUID, r.Topic) })
	}
	return g.Wait()
}

// putRows writes one view row per distinct topic.
func (s *service) putRows(ctx context.Context, g *errgroup.Group, uuid, recipient string, topics []string) {
	for _, t := range uniqueTopics(topics) {
		row := &domain.SubscriptionRow{UUID: uuid, Topic: t, Recipient: recipient}
		g.Go(func() error { return s.subRepo.Put(ctx, row) })
	}
}

func requireSub(caller domain.Identity) error {
	if caller.Sub == "" {
		return fmt.Errorf("not signed in: %w", domain.ErrForbidden)
	}
	return nil
}

// annotate derives the display format (from the first topic) and one notice
// type per topic.
func annotate(n domain.EmailNotification) domain.EmailNotificationVM {
	vm := domain.EmailNotificationVM{
		EmailNotification: n,
		NoticeTypes:       make([]string, 0, len(n.Topics)),
	}
	if len(n.Topics) > 0 {
		vm.Format = topic.Parse(n.Topics[0]).NoticeFormat
	}
	for _, t := range n.Topics {
		vm.NoticeTypes = append(vm.NoticeTypes, topic.Parse(t).NoticeType)
	}
	return vm
}

// uniqueTopics drops repeated topics, keeping first-seen order.
func uniqueTopics(topics []string) []string {
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
