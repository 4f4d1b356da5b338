package models

import (
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// StatusVisibility is who can see a status.
type StatusVisibility string

const (
	StatusVisibilityPublic   StatusVisibility = "public"
	StatusVisibilityUnlisted StatusVisibility = "unlisted"
	StatusVisibilityPrivate  StatusVisibility = "private"
	StatusVisibilityDirect   StatusVisibility = "direct"
)

func (v *StatusVisibility) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, v,
		StatusVisibilityPublic,
		StatusVisibilityUnlisted,
		StatusVisibilityPrivate,
		StatusVisibilityDirect,
	)
}

// NotificationType is the event a notification reports.
type NotificationType string

const (
	NotificationTypeMention              NotificationType = "mention"
	NotificationTypeStatus               NotificationType = "status"
	NotificationTypeReblog               NotificationType = "reblog"
	NotificationTypeFollow               NotificationType = "follow"
	NotificationTypeFollowRequest        NotificationType = "follow_request"
	NotificationTypeFavourite            NotificationType = "favourite"
	NotificationTypePoll                 NotificationType = "poll"
	NotificationTypeUpdate               NotificationType = "update"
	NotificationTypeAdminSignUp          NotificationType = "admin.sign_up"
	NotificationTypeAdminReport          NotificationType = "admin.report"
	NotificationTypeSeveredRelationships NotificationType = "severed_relationships"
	NotificationTypeModerationWarning    NotificationType = "moderation_warning"
	NotificationTypeQuote                NotificationType = "quote"
	NotificationTypeQuotedUpdate         NotificationType = "quoted_update"
)

var notificationTypes = []NotificationType{
	NotificationTypeMention,
	NotificationTypeStatus,
	NotificationTypeReblog,
	NotificationTypeFollow,
	NotificationTypeFollowRequest,
	NotificationTypeFavourite,
	NotificationTypePoll,
	NotificationTypeUpdate,
	NotificationTypeAdminSignUp,
	NotificationTypeAdminReport,
	NotificationTypeSeveredRelationships,
	NotificationTypeModerationWarning,
	NotificationTypeQuote,
	NotificationTypeQuotedUpdate,
}

// NotificationTypes returns every notification type, in documentation order.
func NotificationTypes() []NotificationType {
	return append([]NotificationType(nil), notificationTypes...)
}

func (t *NotificationType) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, t, notificationTypes...)
}

// FilterContext is where a filter applies.
type FilterContext string

const (
	FilterContextHome          FilterContext = "home"
	FilterContextNotifications FilterContext = "notifications"
	FilterContextPublic        FilterContext = "public"
	FilterContextThread        FilterContext = "thread"
	FilterContextAccount       FilterContext = "account"
)

func (c *FilterContext) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, c,
		FilterContextHome,
		FilterContextNotifications,
		FilterContextPublic,
		FilterContextThread,
		FilterContextAccount,
	)
}

// FilterAction is what happens to a status matching a filter.
type FilterAction string

const (
	FilterActionWarn FilterAction = "warn"
	FilterActionHide FilterAction = "hide"
	FilterActionBlur FilterAction = "blur"
)

func (a *FilterAction) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, a, FilterActionWarn, FilterActionHide, FilterActionBlur)
}

// DomainBlockSeverity is how strongly a domain is blocked.
type DomainBlockSeverity string

const (
	DomainBlockSeveritySilence DomainBlockSeverity = "silence"
	DomainBlockSeveritySuspend DomainBlockSeverity = "suspend"
	DomainBlockSeverityNoop    DomainBlockSeverity = "noop"
)

func (s *DomainBlockSeverity) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, s, DomainBlockSeveritySilence, DomainBlockSeveritySuspend, DomainBlockSeverityNoop)
}

// QuoteState is the authorization state of a quote.
type QuoteState string

const (
	QuoteStatePending        QuoteState = "pending"
	QuoteStateAccepted       QuoteState = "accepted"
	QuoteStateRejected       QuoteState = "rejected"
	QuoteStateRevoked        QuoteState = "revoked"
	QuoteStateDeleted        QuoteState = "deleted"
	QuoteStateUnauthorized   QuoteState = "unauthorized"
	QuoteStateBlockedAccount QuoteState = "blocked_account"
	QuoteStateBlockedDomain  QuoteState = "blocked_domain"
	QuoteStateMutedAccount   QuoteState = "muted_account"
)

func (s *QuoteState) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, s,
		QuoteStatePending,
		QuoteStateAccepted,
		QuoteStateRejected,
		QuoteStateRevoked,
		QuoteStateDeleted,
		QuoteStateUnauthorized,
		QuoteStateBlockedAccount,
		QuoteStateBlockedDomain,
		QuoteStateMutedAccount,
	)
}

// ReportCategory is the reason given for a report.
type ReportCategory string

const (
	ReportCategorySpam      ReportCategory = "spam"
	ReportCategoryLegal     ReportCategory = "legal"
	ReportCategoryViolation ReportCategory = "violation"
	ReportCategoryOther     ReportCategory = "other"
)

func (c *ReportCategory) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, c, ReportCategorySpam, ReportCategoryLegal, ReportCategoryViolation, ReportCategoryOther)
}

// AccountWarningAction is the moderation action a warning records.
type AccountWarningAction string

const (
	AccountWarningActionNone                    AccountWarningAction = "none"
	AccountWarningActionDisable                 AccountWarningAction = "disable"
	AccountWarningActionMarkStatusesAsSensitive AccountWarningAction = "mark_statuses_as_sensitive"
	AccountWarningActionDeleteStatuses          AccountWarningAction = "delete_statuses"
	AccountWarningActionSensitive               AccountWarningAction = "sensitive"
	AccountWarningActionSilence                 AccountWarningAction = "silence"
	AccountWarningActionSuspend                 AccountWarningAction = "suspend"
)

func (a *AccountWarningAction) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, a,
		AccountWarningActionNone,
		AccountWarningActionDisable,
		AccountWarningActionMarkStatusesAsSensitive,
		AccountWarningActionDeleteStatuses,
		AccountWarningActionSensitive,
		AccountWarningActionSilence,
		AccountWarningActionSuspend,
	)
}

// AppealState is the review state of an appeal.
type AppealState string

const (
	AppealStateApproved AppealState = "approved"
	AppealStateRejected AppealState = "rejected"
	AppealStatePending  AppealState = "pending"
)

func (s *AppealState) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, s, AppealStateApproved, AppealStateRejected, AppealStatePending)
}

// MediaType is the kind of a media attachment.
type MediaType string

const (
	MediaTypeUnknown MediaType = "unknown"
	MediaTypeImage   MediaType = "image"
	MediaTypeGifv    MediaType = "gifv"
	MediaTypeVideo   MediaType = "video"
	MediaTypeAudio   MediaType = "audio"
)

func (t *MediaType) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, t, MediaTypeUnknown, MediaTypeImage, MediaTypeGifv, MediaTypeVideo, MediaTypeAudio)
}

// GroupedNotificationsExpand selects how accounts are embedded in grouped notifications.
type GroupedNotificationsExpand string

const (
	GroupedNotificationsExpandFull           GroupedNotificationsExpand = "full"
	GroupedNotificationsExpandPartialAvatars GroupedNotificationsExpand = "partial_avatars"
)

func (e *GroupedNotificationsExpand) UnmarshalJSON(data []byte) error {
	return values.UnmarshalEnum(data, e, GroupedNotificationsExpandFull, GroupedNotificationsExpandPartialAvatars)
}
