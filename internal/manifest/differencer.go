// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"context"

	"github.com/MKhiriev/go-device-sync/models"
)

// Differencer builds the sync plan of one content domain.
type Differencer struct {
	classifier ChangeClassifier
	validator  LocalValidator
}

// NewDifferencer returns a Differencer. A nil classifier selects
// SizeClassifier.
func NewDifferencer(classifier ChangeClassifier, validator LocalValidator) *Differencer {
	if classifier == nil {
		classifier = SizeClassifier{}
	}
	return &Differencer{classifier: classifier, validator: validator}
}

// Diff classifies every entry of current against previous and decides what
// to fetch. The plan lists every entry of current in manifest order.
//
// An UNCHANGED verdict is honored only when the local file validates;
// otherwise the entry is fetched with reason local_mismatch. Entries present
// only in previous are ignored.
//
// ctx cancellation is checked at the start of each iteration.
func (d *Differencer) Diff(ctx context.Context, current, previous models.Manifest) (models.SyncPlan, error) {
	plan := models.SyncPlan{Items: make([]models.PlanItem, 0, current.Len())}

	for _, entry := range current.Entries {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		item := models.PlanItem{Entry: entry, Class: d.classifier.Classify(entry, previous)}
		switch item.Class {
		case models.New:
			item.Download, item.Reason = true, models.ReasonNew
		case models.Modified:
			item.Download, item.Reason = true, models.ReasonModified
		default:
			if d.validator != nil && !d.validator.Valid(entry) {
				// a prior transaction was interrupted or the file was removed
				item.Download, item.Reason = true, models.ReasonLocalMismatch
			}
		}

		plan.Items = append(plan.Items, item)
	}

	return plan, nil
}
