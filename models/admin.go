package models

import (
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// AdminDomainBlock is a domain blocked by the instance's moderators.
// https://docs.joinmastodon.org/entities/Admin_DomainBlock/
type AdminDomainBlock struct {
	ID             string                  `json:"id"`
	Domain         string                  `json:"domain"`
	Digest         string                  `json:"digest"`
	CreatedAt      time.Time               `json:"created_at"`
	Severity       DomainBlockSeverity     `json:"severity"`
	RejectMedia    bool                    `json:"reject_media"`
	RejectReports  bool                    `json:"reject_reports"`
	PrivateComment values.Nullable[string] `json:"private_comment"`
	PublicComment  values.Nullable[string] `json:"public_comment"`
	Obfuscate      bool                    `json:"obfuscate"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (b AdminDomainBlock) MarshalJSON() ([]byte, error) {
	type adminDomainBlock AdminDomainBlock
	return marshaller.Marshal(adminDomainBlock(b), b.AdditionalProperties)
}

func (b *AdminDomainBlock) UnmarshalJSON(data []byte) error {
	type adminDomainBlock AdminDomainBlock
	return marshaller.Unmarshal(data, (*adminDomainBlock)(b), &b.AdditionalProperties)
}
