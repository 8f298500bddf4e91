//
// Tencent is pleased to support the open source community by making answerlog available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// answerlog is licensed under the Apache License Version 2.0.
//
//

package scoring

// Descriptions returns operator-facing descriptions for every metric the
// system records, keyed by display name.
func Descriptions() map[string]string {
	return map[string]string{
		"Accuracy Score": "Numeric accuracy derived from human feedback: " +
			"Accurate = 1.0, Partially accurate = 0.5, Inaccurate = 0.0.",
		"Response Time": "Seconds the generation backend took to produce the answer. " +
			"Lower is better.",
		"Word Count": "Number of whitespace-delimited words in the generated answer. " +
			"A rough proxy for verbosity.",
		"BLEU Score": "N-gram precision overlap between the answer and the human-supplied " +
			"reference answer, with a brevity penalty for short answers. Ranges 0 to 1; " +
			"only available once a reference answer exists.",
		"Similarity Score": "Token-frequency cosine similarity between the answer and the " +
			"reference answer. Ranges 0 to 1; identical texts score 1. Only available once " +
			"a reference answer exists.",
		"Relevance Score": "Jaccard overlap between the answer's vocabulary and the " +
			"question's vocabulary. Ranges 0 to 1 and is always available.",
		"Efficiency Score": "Accuracy divided by (response time + 0.1). Ranks answers that " +
			"are both fast and correct highest.",
	}
}
