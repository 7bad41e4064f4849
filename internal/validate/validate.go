// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

// Package validate checks resolved run configurations against the
// structural rules the pipeline launcher enforces before scheduling work:
// a non-empty sample sheet, the mandatory universal options, a coherent
// storage location, and the presence of every pipeline stage.
//
// All rules are evaluated on every pass so one report names everything that
// is wrong, not just the first finding.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/models"
)

// ErrInvalid matches errors produced by [ReportError]; callers branch with
// [errors.Is] when a validation failure must abort a flow.
var ErrInvalid = errors.New("configuration is invalid")

// Sample entries every patient block must carry, naming the _1 fastq of
// each read pair.
var requiredSampleKeys = []string{
	"tumor_dna_fastq_1",
	"tumor_rna_fastq_1",
	"normal_dna_fastq_1",
}

// Pipeline stages and the tool sections each must provide. The merged
// configuration carries all of them whenever the shipped defaults were in
// play; the table exists to catch hand-assembled or mangled documents.
var requiredStages = []struct {
	section string
	tools   []string
}{
	{"alignment", []string{"cutadapt", "bwa", "star"}},
	{"expression_estimation", []string{"rsem"}},
	{"mutation_calling", []string{"mutect", "muse", "radia", "somaticsniper", "strelka"}},
	{"mutation_annotation", []string{"snpeff"}},
	{"mutation_translation", []string{"transgene"}},
	{"haplotyping", []string{"phlat"}},
	{"mhc_peptide_binding", []string{"mhci", "mhcii"}},
	{"prediction_ranking", []string{"rank_boost"}},
	{"reports", []string{"mhc_pathway_assessment"}},
}

// Check evaluates every rule over a resolved configuration and returns the
// full set of findings. The input is never modified.
func Check(tree *configtree.Tree) models.ValidationReport {
	var issues []models.Issue
	add := func(path []string, problem string) {
		issues = append(issues, models.Issue{
			Path:    configtree.JoinPath(path),
			Problem: problem,
		})
	}

	checkPatients(tree, add)
	checkUniversalOptions(tree, add)
	checkStages(tree, add)

	return models.NewValidationReport(issues)
}

// ReportError converts a report into a single error joining one line per
// issue, or nil for a clean report. The result matches [ErrInvalid].
func ReportError(r models.ValidationReport) error {
	if r.OK {
		return nil
	}
	errs := make([]error, 0, len(r.Issues)+1)
	errs = append(errs, ErrInvalid)
	for _, issue := range r.Issues {
		errs = append(errs, errors.New(issue.String()))
	}
	return errors.Join(errs...)
}

type addFunc func(path []string, problem string)

func checkPatients(tree *configtree.Tree, add addFunc) {
	v, ok := tree.Lookup("patients")
	if !ok {
		add([]string{"patients"}, "section is missing; a run needs at least one patient")
		return
	}
	section, ok := v.(*configtree.Tree)
	if !ok {
		add([]string{"patients"}, "expected a mapping of patient entries")
		return
	}
	if section.Len() == 0 {
		add([]string{"patients"}, "no patient entries defined")
		return
	}

	for _, id := range section.Keys() {
		entry, ok := section.Subtree(id)
		if !ok {
			add([]string{"patients", id}, "expected a mapping of sample entries")
			continue
		}
		for _, sample := range requiredSampleKeys {
			s, ok := entry.Scalar(sample)
			if !ok {
				add([]string{"patients", id, sample}, "required sample entry is missing")
				continue
			}
			if str, isStr := s.StringVal(); !isStr || strings.TrimSpace(str) == "" {
				add([]string{"patients", id, sample}, "sample path must be a non-empty string")
			}
		}
		for _, key := range entry.Keys() {
			if !isRequiredSample(key) {
				add([]string{"patients", id, key}, "unknown sample entry")
			}
		}
	}
}

func isRequiredSample(key string) bool {
	for _, s := range requiredSampleKeys {
		if key == s {
			return true
		}
	}
	return false
}

func checkUniversalOptions(tree *configtree.Tree, add addFunc) {
	v, ok := tree.Lookup("Universal_Options")
	if !ok {
		add([]string{"Universal_Options"}, "section is missing")
		return
	}
	section, ok := v.(*configtree.Tree)
	if !ok {
		add([]string{"Universal_Options"}, "expected a mapping of options")
		return
	}

	nonEmpty := func(key string) (string, bool) {
		s, ok := section.Scalar(key)
		if !ok || s.IsNull() {
			add([]string{"Universal_Options", key}, "no value supplied")
			return "", false
		}
		str, isStr := s.StringVal()
		if !isStr || strings.TrimSpace(str) == "" {
			add([]string{"Universal_Options", key}, "no value supplied")
			return "", false
		}
		return str, true
	}

	nonEmpty("java_Xmx")
	nonEmpty("output_folder")

	if storage, ok := nonEmpty("storage_location"); ok {
		switch {
		case storage == models.StorageLocationLocal:
			// nothing more to require
		case strings.HasPrefix(storage, "aws"):
			if key, ok := section.Scalar("sse_key"); !ok || key.IsNull() || key.AsString() == "" {
				add([]string{"Universal_Options", "sse_key"}, "required for aws storage")
			}
		default:
			add([]string{"Universal_Options", "storage_location"},
				fmt.Sprintf("must be %s or aws:<region>", models.StorageLocationLocal))
		}
	}

	if s, ok := section.Scalar("sse_key_is_master"); ok && !s.IsNull() {
		if _, isBool := s.BoolVal(); !isBool {
			add([]string{"Universal_Options", "sse_key_is_master"}, "must be a boolean")
		}
	}

	if s, ok := section.Scalar("max_cores"); ok && !s.IsNull() {
		if n, isInt := s.IntVal(); !isInt || n <= 0 {
			add([]string{"Universal_Options", "max_cores"}, "must be a positive integer")
		}
	}
}

func checkStages(tree *configtree.Tree, add addFunc) {
	for _, stage := range requiredStages {
		v, ok := tree.Lookup(stage.section)
		if !ok {
			add([]string{stage.section}, "pipeline stage section is missing")
			continue
		}
		section, ok := v.(*configtree.Tree)
		if !ok {
			add([]string{stage.section}, "expected a mapping of tool sections")
			continue
		}
		for _, tool := range stage.tools {
			tv, ok := section.Get(tool)
			if !ok {
				add([]string{stage.section, tool}, "tool section is missing")
				continue
			}
			if _, isTree := tv.(*configtree.Tree); !isTree {
				add([]string{stage.section, tool}, "expected a mapping of tool options")
			}
		}
	}
}
