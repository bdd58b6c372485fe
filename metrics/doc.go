// Package metrics scores classifier outputs against integer labels.
//
// Inputs are N×C log-probability matrices (as produced by gnn.Classifier),
// label vectors of length N and optional boolean masks selecting the rows of
// a split (train, validation, test). A nil mask selects every row. Rows whose
// label is IgnoreLabel never contribute, whatever the mask says.
//
//	loss, _ := metrics.NLLLoss(logp, labels, trainMask)
//	acc, _ := metrics.Accuracy(logp, labels, valMask)
package metrics
