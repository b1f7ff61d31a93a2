package recommender

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Tokens are runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`\w\w+`)

func tokenize(text string) []string {
	words := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if englishStopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Vectorize builds TF-IDF vectors for the documents over a shared
// vocabulary: raw term counts, smooth idf ln((1+n)/(1+df))+1, rows
// l2-normalized.
func Vectorize(docs []string) [][]float64 {
	tokenized := make([][]string, len(docs))
	vocabSet := make(map[string]bool)
	for i, doc := range docs {
		tokenized[i] = tokenize(doc)
		for _, t := range tokenized[i] {
			vocabSet[t] = true
		}
	}

	vocab := make([]string, 0, len(vocabSet))
	for t := range vocabSet {
		vocab = append(vocab, t)
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}

	// Document frequency per term.
	df := make([]int, len(vocab))
	for _, tokens := range tokenized {
		seen := make(map[int]bool, len(tokens))
		for _, t := range tokens {
			seen[index[t]] = true
		}
		for i := range seen {
			df[i]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, tokens := range tokenized {
		vec := make([]float64, len(vocab))
		for _, t := range tokens {
			vec[index[t]]++
		}
		for j := range vec {
			vec[j] *= idf[j]
		}
		normalize(vec)
		vectors[i] = vec
	}
	return vectors
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// CosineSimilarity returns the cosine of the angle between two vectors, 0
// for mismatched or zero-length input.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
