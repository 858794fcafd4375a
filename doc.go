// Package amr converts Abstract Meaning Representation corpus files into a
// variable-free, one-graph-per-line form paired with a line-aligned sentence
// file, for training sequence-to-sequence models.
//
// # Quick Start
//
//	conv := amr.New(amr.WithFormat(format.Options{StripSenseTags: true}))
//	res, err := conv.ConvertFile("amr-release-training-bolt.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i := range res.Graphs {
//	    fmt.Println(res.Graphs[i], "\t", res.Sentences[i])
//	}
//
// Given
//
//	# ::snt Bob likes himself.
//	(l / like
//	      :ARG0 (p / person :name "Bob")
//	      :ARG1 p)
//
// the graph line is
//
//	(like :ARG0 (person :name "Bob") :ARG1 (person :name "Bob"))
//
// # Pipeline
//
// Conversion runs four batch stages: package annotation drops headers, wiki
// links and blocks excluded by a filter tag; package resolve substitutes
// variable references; package linearize joins each graph onto one line and
// collects sentences; package format applies optional cosmetic rewrites.
//
// The transform is lossy on purpose. Re-entrant nodes are copied to every
// reference site, and references the heuristic cannot resolve are left as
// they are. Stats reports how many references were resolved.
//
// # Thread Safety
//
// Converter is safe for concurrent use. Every call owns its binding table and
// accumulators, so files can be converted in parallel.
package amr
