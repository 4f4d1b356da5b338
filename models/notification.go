package models

import (
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// Notification is an event that happened to the authenticated user.
// https://docs.joinmastodon.org/entities/Notification/
type Notification struct {
	ID                string           `json:"id"`
	Type              NotificationType `json:"type"`
	GroupKey          *string          `json:"group_key,omitzero"`
	CreatedAt         time.Time        `json:"created_at"`
	Account           Account          `json:"account"`
	Status            *Status          `json:"status,omitzero"`
	Report            *Report          `json:"report,omitzero"`
	ModerationWarning *AccountWarning  `json:"moderation_warning,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (n Notification) MarshalJSON() ([]byte, error) {
	type notification Notification
	return marshaller.Marshal(notification(n), n.AdditionalProperties)
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	type notification Notification
	return marshaller.Unmarshal(data, (*notification)(n), &n.AdditionalProperties)
}

// NotificationGroup is a set of notifications of the same type about the same subject.
// https://docs.joinmastodon.org/entities/GroupedNotificationsResults/#NotificationGroup
type NotificationGroup struct {
	GroupKey                 string                  `json:"group_key"`
	NotificationsCount       int                     `json:"notifications_count"`
	Type                     NotificationType        `json:"type"`
	MostRecentNotificationID string                  `json:"most_recent_notification_id"`
	PageMinID                *string                 `json:"page_min_id,omitzero"`
	PageMaxID                *string                 `json:"page_max_id,omitzero"`
	LatestPageNotificationAt *time.Time              `json:"latest_page_notification_at,omitzero"`
	SampleAccountIDs         []string                `json:"sample_account_ids"`
	StatusID                 values.Nullable[string] `json:"status_id,omitzero"`
	Report                   *Report                 `json:"report,omitzero"`
	ModerationWarning        *AccountWarning         `json:"moderation_warning,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (g NotificationGroup) MarshalJSON() ([]byte, error) {
	type notificationGroup NotificationGroup
	return marshaller.Marshal(notificationGroup(g), g.AdditionalProperties)
}

func (g *NotificationGroup) UnmarshalJSON(data []byte) error {
	type notificationGroup NotificationGroup
	return marshaller.Unmarshal(data, (*notificationGroup)(g), &g.AdditionalProperties)
}

// GroupedNotificationsResults is a page of grouped notifications with the accounts and statuses
// they reference, each included once.
// https://docs.joinmastodon.org/entities/GroupedNotificationsResults/
type GroupedNotificationsResults struct {
	Accounts           []Account                  `json:"accounts"`
	PartialAccounts    []PartialAccountWithAvatar `json:"partial_accounts,omitzero"`
	Statuses           []Status                   `json:"statuses"`
	NotificationGroups []NotificationGroup        `json:"notification_groups"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (r GroupedNotificationsResults) MarshalJSON() ([]byte, error) {
	type groupedNotificationsResults GroupedNotificationsResults
	return marshaller.Marshal(groupedNotificationsResults(r), r.AdditionalProperties)
}

func (r *GroupedNotificationsResults) UnmarshalJSON(data []byte) error {
	type groupedNotificationsResults GroupedNotificationsResults
	return marshaller.Unmarshal(data, (*groupedNotificationsResults)(r), &r.AdditionalProperties)
}

// PartialAccountWithAvatar is the reduced account returned with expand_accounts=partial_avatars.
type PartialAccountWithAvatar struct {
	ID           string `json:"id"`
	Acct         string `json:"acct"`
	URL          string `json:"url"`
	Avatar       string `json:"avatar"`
	AvatarStatic string `json:"avatar_static"`
	Locked       bool   `json:"locked"`
	Bot          bool   `json:"bot"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (a PartialAccountWithAvatar) MarshalJSON() ([]byte, error) {
	type partialAccountWithAvatar PartialAccountWithAvatar
	return marshaller.Marshal(partialAccountWithAvatar(a), a.AdditionalProperties)
}

func (a *PartialAccountWithAvatar) UnmarshalJSON(data []byte) error {
	type partialAccountWithAvatar PartialAccountWithAvatar
	return marshaller.Unmarshal(data, (*partialAccountWithAvatar)(a), &a.AdditionalProperties)
}

// AccountWarning is a moderation action taken against an account.
// https://docs.joinmastodon.org/entities/AccountWarning/
type AccountWarning struct {
	ID            string                    `json:"id"`
	Action        AccountWarningAction      `json:"action"`
	Text          string                    `json:"text"`
	StatusIDs     values.Nullable[[]string] `json:"status_ids"`
	TargetAccount Account                   `json:"target_account"`
	Appeal        values.Nullable[Appeal]   `json:"appeal,omitzero"`
	CreatedAt     time.Time                 `json:"created_at"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (w AccountWarning) MarshalJSON() ([]byte, error) {
	type accountWarning AccountWarning
	return marshaller.Marshal(accountWarning(w), w.AdditionalProperties)
}

func (w *AccountWarning) UnmarshalJSON(data []byte) error {
	type accountWarning AccountWarning
	return marshaller.Unmarshal(data, (*accountWarning)(w), &w.AdditionalProperties)
}

// Appeal is an account's request to reverse a moderation action.
// https://docs.joinmastodon.org/entities/Appeal/
type Appeal struct {
	Text  string      `json:"text"`
	State AppealState `json:"state"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (a Appeal) MarshalJSON() ([]byte, error) {
	type appeal Appeal
	return marshaller.Marshal(appeal(a), a.AdditionalProperties)
}

func (a *Appeal) UnmarshalJSON(data []byte) error {
	type appeal Appeal
	return marshaller.Unmarshal(data, (*appeal)(a), &a.AdditionalProperties)
}

// Report is a report filed against an account.
// https://docs.joinmastodon.org/entities/Report/
type Report struct {
	ID            string                     `json:"id"`
	ActionTaken   bool                       `json:"action_taken"`
	ActionTakenAt values.Nullable[time.Time] `json:"action_taken_at"`
	Category      ReportCategory             `json:"category"`
	Comment       string                     `json:"comment"`
	Forwarded     bool                       `json:"forwarded"`
	CreatedAt     time.Time                  `json:"created_at"`
	StatusIDs     values.Nullable[[]string]  `json:"status_ids"`
	RuleIDs       values.Nullable[[]string]  `json:"rule_ids"`
	TargetAccount Account                    `json:"target_account"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (r Report) MarshalJSON() ([]byte, error) {
	type report Report
	return marshaller.Marshal(report(r), r.AdditionalProperties)
}

func (r *Report) UnmarshalJSON(data []byte) error {
	type report Report
	return marshaller.Unmarshal(data, (*report)(r), &r.AdditionalProperties)
}
