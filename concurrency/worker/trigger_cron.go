//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2026 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package worker

import (
	"time"

	gocron "github.com/netresearch/go-cron"

	"github.com/weaviate/weaviate-core/entities/coreerrors"
)

// CronTrigger fires on a standard cron schedule parsed with go-cron's
// ParseStandard. It only computes the next firing time; job registration
// and scheduling belong to an outer layer, not to the trigger itself.
type CronTrigger struct {
	schedule gocron.Schedule
}

// NewCronTrigger parses spec as a standard five-field cron expression.
func NewCronTrigger(spec string) (*CronTrigger, error) {
	schedule, err := gocron.ParseStandard(spec)
	if err != nil {
		return nil, coreerrors.NewErrInvalidArgument(err)
	}
	return &CronTrigger{schedule: schedule}, nil
}

func (t *CronTrigger) NextExecution(ctx TriggerContext) (time.Time, bool) {
	return t.schedule.Next(ctx.Now), true
}
