// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyService serves GetApiKeys from total keys, honouring Limit (default
// 25) and a numeric Position cursor. failAt makes the call at that position
// fail.
type keyService struct {
	total  int
	failAt string
	limits []int32
	calls  int
}

func (s *keyService) fetch(_ context.Context, in *apigateway.GetApiKeysInput) (*apigateway.GetApiKeysOutput, error) {
	s.calls++
	s.limits = append(s.limits, awsv2.ToInt32(in.Limit))

	pos := awsv2.ToString(in.Position)
	if s.failAt != "" && pos == s.failAt {
		return nil, errors.New("throttled")
	}

	start := 0
	if pos != "" {
		fmt.Sscanf(pos, "%d", &start)
	}
	size := int(awsv2.ToInt32(in.Limit))
	if size == 0 {
		size = 25
	}

	out := &apigateway.GetApiKeysOutput{}
	end := start + size
	if end > s.total {
		end = s.total
	}
	for i := start; i < end; i++ {
		out.Items = append(out.Items, types.ApiKey{Id: awsv2.String(fmt.Sprintf("k%d", i))})
	}
	if end < s.total {
		out.Position = awsv2.String(fmt.Sprintf("%d", end))
	}
	return out, nil
}

func countKeys(pages []*apigateway.GetApiKeysOutput) int {
	n := 0
	for _, p := range pages {
		n += len(p.Items)
	}
	return n
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pager     Pager
		wantCalls int
		wantItems int
		wantHint  bool
	}{
		{
			name:      "no paging makes one call",
			total:     60,
			pager:     Pager{Mode: NoPaging},
			wantCalls: 1,
			wantItems: 25,
		},
		{
			name:      "modular walks every page",
			total:     60,
			pager:     Pager{Mode: Modular},
			wantCalls: 3,
			wantItems: 60,
		},
		{
			name:      "modular with limit",
			total:     60,
			pager:     Pager{Mode: Modular, Limit: 30},
			wantCalls: 2,
			wantItems: 60,
		},
		{
			name:      "exact multiple of page size",
			total:     50,
			pager:     Pager{Mode: Modular},
			wantCalls: 2,
			wantItems: 50,
		},
		{
			name:      "empty result",
			total:     0,
			pager:     Pager{Mode: Modular},
			wantCalls: 1,
			wantItems: 0,
		},
		{
			name:      "legacy stops at max items",
			total:     100,
			pager:     Pager{Mode: Legacy, MaxItems: 30},
			wantCalls: 1,
			wantItems: 30,
		},
		{
			name:      "legacy max items larger than total",
			total:     40,
			pager:     Pager{Mode: Legacy, MaxItems: 100},
			wantCalls: 1,
			wantItems: 40,
		},
		{
			name:      "legacy budget across pages",
			total:     100,
			pager:     Pager{Mode: Legacy, MaxItems: 45, Limit: 20},
			wantCalls: 3,
			wantItems: 45,
		},
		{
			name:      "manual mode fetches one page and hints",
			total:     60,
			pager:     Pager{Mode: Modular, Manual: true},
			wantCalls: 1,
			wantItems: 25,
			wantHint:  true,
		},
		{
			name:      "manual mode from a position",
			total:     60,
			pager:     Pager{Mode: Modular, Manual: true, Position: "50"},
			wantCalls: 1,
			wantItems: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &keyService{total: tt.total}
			var hint bytes.Buffer
			tt.pager.Hint = &hint

			pages, err := Paginate(context.Background(), &apigateway.GetApiKeysInput{}, svc.fetch, tt.pager)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, svc.calls)
			assert.Equal(t, tt.wantItems, countKeys(pages))
			if tt.wantHint {
				assert.Contains(t, hint.String(), "Next position: 25")
			} else {
				assert.Empty(t, hint.String())
			}
		})
	}
}

func TestPaginateLegacyLowersLimit(t *testing.T) {
	svc := &keyService{total: 100}
	pages, err := Paginate(context.Background(), &apigateway.GetApiKeysInput{}, svc.fetch, Pager{Mode: Legacy, MaxItems: 45, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 45, countKeys(pages))
	assert.Equal(t, []int32{20, 20, 5}, svc.limits)
}

func TestPaginateLegacyPartialResults(t *testing.T) {
	svc := &keyService{total: 100, failAt: "25"}
	pages, err := Paginate(context.Background(), &apigateway.GetApiKeysInput{}, svc.fetch, Pager{Mode: Legacy})

	var partial *PartialResultsError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 25, partial.Retrieved)
	assert.EqualError(t, errors.Unwrap(err), "throttled")
	assert.Equal(t, 25, countKeys(pages))
}

func TestPaginateModularFailureDropsPages(t *testing.T) {
	svc := &keyService{total: 100, failAt: "25"}
	pages, err := Paginate(context.Background(), &apigateway.GetApiKeysInput{}, svc.fetch, Pager{Mode: Modular})
	require.EqualError(t, err, "throttled")
	assert.Nil(t, pages)
}

func TestPaginateFirstCallFailure(t *testing.T) {
	svc := &keyService{total: 100, failAt: "x"}
	in := &apigateway.GetApiKeysInput{Position: awsv2.String("x")}
	pages, err := Paginate(context.Background(), in, svc.fetch, Pager{Mode: Legacy})
	require.Error(t, err)

	var partial *PartialResultsError
	assert.False(t, errors.As(err, &partial))
	assert.Nil(t, pages)
}

func TestReflectionHelpers(t *testing.T) {
	in := &apigateway.GetRestApisInput{}
	setLimit(in, 42)
	setPosition(in, "abc")
	assert.Equal(t, int32(42), awsv2.ToInt32(in.Limit))
	assert.Equal(t, "abc", awsv2.ToString(in.Position))

	setLimit(in, math.MaxInt32+1)
	assert.Equal(t, int32(math.MaxInt32), awsv2.ToInt32(in.Limit))

	// Inputs without the fields are left alone.
	acct := &apigateway.GetAccountInput{}
	setLimit(acct, 1)
	setPosition(acct, "p")

	out := &apigateway.GetRestApisOutput{
		Items:    []types.RestApi{{}, {}, {}},
		Position: awsv2.String("next"),
	}
	assert.Equal(t, "next", getPosition(out))
	assert.Equal(t, 3, itemCount(out))
	assert.Equal(t, 2, trimItems(out, 2))
	assert.Len(t, out.Items, 2)

	stages := &apigateway.GetStagesOutput{Item: []types.Stage{{}}}
	assert.Equal(t, 1, itemCount(stages))
	assert.Equal(t, "", getPosition(stages))

	usage := &apigateway.GetUsageOutput{Items: map[string][][]int64{"k1": {{1, 2}}, "k2": {{3, 4}}}}
	assert.Equal(t, 2, itemCount(usage))
	assert.Equal(t, 2, trimItems(usage, 1))
}
