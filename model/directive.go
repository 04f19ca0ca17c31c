// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

// Directive pairs a column identification with the labels to apply to every
// issue card found in that column. After validation exactly one
// identification path is set: a positive ColumnID, or a ColumnName and
// ProjectName pair. ColumnID wins when the raw entry carries both.
type Directive struct {
	ColumnID    int64
	ColumnName  string
	ProjectName string
	Labels      []string
}

func (d *Directive) ByColumnID() bool {
	return d.ColumnID > 0
}

// rawDirective mirrors the loosely typed configuration entries. Labels and
// ColumnID stay untyped so one bad value drops a label or falls back to the
// name pair instead of rejecting the whole entry at decode time.
type rawDirective struct {
	Labels      []interface{} `json:"labels"`
	ColumnID    interface{}   `json:"column_id"`
	ColumnName  string        `json:"column_name"`
	ProjectName string        `json:"project_name"`
}

// DirectivesFromJSON decodes the configuration payload into the surviving
// directives, in input order. Invalid entries are logged and dropped; the
// returned error is non-nil only when the payload is not a JSON array or no
// valid directive survives.
func DirectivesFromJSON(data io.Reader) ([]*Directive, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(data).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "configuration is not a JSON array")
	}

	directives := make([]*Directive, 0, len(raw))
	for i, entry := range raw {
		directive, err := directiveFromRaw(entry)
		if err != nil {
			mlog.Warn("Skipping invalid directive", mlog.Int("index", i), mlog.Err(err))
			continue
		}
		directives = append(directives, directive)
	}

	if len(directives) == 0 {
		return nil, errors.New("no valid directives in configuration")
	}

	return directives, nil
}

func directiveFromRaw(entry json.RawMessage) (*Directive, error) {
	var raw rawDirective
	if err := json.Unmarshal(entry, &raw); err != nil {
		return nil, errors.Wrap(err, "entry is not a directive object")
	}
	if raw.Labels == nil {
		return nil, errors.New("entry has no labels")
	}

	directive := &Directive{}
	switch {
	case columnIDValue(raw.ColumnID) > 0:
		directive.ColumnID = columnIDValue(raw.ColumnID)
	case raw.ColumnName != "" && raw.ProjectName != "":
		directive.ColumnName = raw.ColumnName
		directive.ProjectName = raw.ProjectName
	default:
		return nil, errors.New("entry has neither a column_id nor a column_name/project_name pair")
	}

	for _, label := range raw.Labels {
		name, ok := label.(string)
		if !ok || name == "" {
			mlog.Warn("Dropping invalid label", mlog.Any("label", label))
			continue
		}
		directive.Labels = append(directive.Labels, strings.ToLower(name))
	}
	if len(directive.Labels) == 0 {
		return nil, errors.New("entry has no usable labels")
	}

	return directive, nil
}

// columnIDValue coerces the column_id shapes seen in user configurations:
// JSON numbers and numeric strings. Anything else counts as absent.
func columnIDValue(v interface{}) int64 {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return 0
		}
		return int64(t)
	case string:
		id, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0
		}
		return id
	default:
		return 0
	}
}
