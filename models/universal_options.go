// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package models

import (
	"fmt"
	"strings"

	"github.com/pimmuno/protectconf/configtree"
)

// StorageLocationLocal is the storage_location value for runs that keep
// intermediate and output files on the executing host.
const StorageLocationLocal = "Local"

// UniversalOptions is the typed view of the Universal_Options section of a
// resolved configuration. It exists for consumers that need a handful of
// well-known values (storage location, SSE key, heap ceiling) without
// walking the tree themselves; unknown or absent keys simply decode to zero
// values.
type UniversalOptions struct {
	DockerHub       string
	JavaXmx         string
	ReferenceBuild  string
	SSEKey          string
	SSEKeyIsMaster  bool
	StorageLocation string
	OutputFolder    string
	MaxCores        int
}

// DecodeUniversalOptions extracts the Universal_Options section from a
// resolved configuration. A missing section decodes to the zero value; the
// caller is expected to have validated the document if it needs guarantees.
func DecodeUniversalOptions(tree *configtree.Tree) UniversalOptions {
	var uo UniversalOptions
	section, ok := tree.Subtree("Universal_Options")
	if !ok {
		return uo
	}

	str := func(key string) string {
		s, ok := section.Scalar(key)
		if !ok || s.IsNull() {
			return ""
		}
		return s.AsString()
	}

	uo.DockerHub = str("dockerhub")
	uo.JavaXmx = str("java_Xmx")
	uo.ReferenceBuild = str("reference_build")
	uo.SSEKey = str("sse_key")
	uo.StorageLocation = str("storage_location")
	uo.OutputFolder = str("output_folder")

	if s, ok := section.Scalar("sse_key_is_master"); ok {
		if b, ok := s.BoolVal(); ok {
			uo.SSEKeyIsMaster = b
		}
	}
	if s, ok := section.Scalar("max_cores"); ok {
		if n, ok := s.IntVal(); ok {
			uo.MaxCores = int(n)
		}
	}
	return uo
}

// IsLocal reports whether the run keeps its files on the executing host.
func (uo UniversalOptions) IsLocal() bool {
	return uo.StorageLocation == StorageLocationLocal
}

// IsAWS reports whether storage_location points at S3 ("aws" or
// "aws:<region>").
func (uo UniversalOptions) IsAWS() bool {
	return strings.HasPrefix(uo.StorageLocation, "aws")
}

// AWSRegion returns the region suffix of an aws storage location, or the
// empty string when none was given.
func (uo UniversalOptions) AWSRegion() string {
	if rest, ok := strings.CutPrefix(uo.StorageLocation, "aws:"); ok {
		return rest
	}
	return ""
}

// Patient is one sample sheet entry of the patients section. The three
// fastq fields name the _1 files of each read pair.
type Patient struct {
	ID              string `json:"id"`
	TumorDNAFastq1  string `json:"tumor_dna_fastq_1"`
	TumorRNAFastq1  string `json:"tumor_rna_fastq_1"`
	NormalDNAFastq1 string `json:"normal_dna_fastq_1"`
}

// DecodePatients extracts the patients section in document order. A missing
// section yields an empty slice; a patients entry that is not a mapping is
// an error because no sensible Patient can be built from it.
func DecodePatients(tree *configtree.Tree) ([]Patient, error) {
	v, ok := tree.Lookup("patients")
	if !ok {
		return nil, nil
	}
	section, ok := v.(*configtree.Tree)
	if !ok {
		return nil, fmt.Errorf("patients: expected a mapping of patient entries")
	}

	patients := make([]Patient, 0, section.Len())
	for _, id := range section.Keys() {
		entry, ok := section.Subtree(id)
		if !ok {
			return nil, fmt.Errorf("patients.%s: expected a mapping of sample entries", id)
		}
		p := Patient{ID: id}
		if s, ok := entry.Scalar("tumor_dna_fastq_1"); ok {
			p.TumorDNAFastq1 = s.AsString()
		}
		if s, ok := entry.Scalar("tumor_rna_fastq_1"); ok {
			p.TumorRNAFastq1 = s.AsString()
		}
		if s, ok := entry.Scalar("normal_dna_fastq_1"); ok {
			p.NormalDNAFastq1 = s.AsString()
		}
		patients = append(patients, p)
	}
	return patients, nil
}
