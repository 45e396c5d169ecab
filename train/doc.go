// Package train drives reader training: it iterates epochs of batches,
// computes analytic gradients of the embedding → dot-product → softmax
// cross-entropy graph, and applies Adam updates to the two embedding
// tables.
//
// What:
//
//   - Adam is a per-table Adam optimiser (Kingma & Ba) with the usual
//     bias-corrected first and second moment estimates.
//   - Trainer owns one Adam state per embedding table and runs Run
//     (training epochs) and Evaluate (mean loss over an eval stream,
//     with the stream's Eval flag set).
//
// Gradients (B instances, C=2 slots):
//
//	g            = softmax(scores) − targets            (B × C)
//	∂L/∂q[i]     = Σ_c g[i][c] · cand[c][i]             (scattered by question id)
//	∂L/∂cand[id] = Σ_{(i,c): CandidateIDs[i][c]=id} g[i][c] · q[i]
//
// Duplicate ids inside a batch accumulate, matching the gather/scatter
// semantics of an embedding lookup.
//
// Why:
//
//   - The scoring graph is small and fixed, so its gradients are three
//     lines of algebra; carrying an autodiff engine for it would be the
//     heavier and less transparent choice.
//
// Errors:
//
//   - ErrBadEpochs: a non-positive epoch count.
//   - ErrNoBatches: the dataset yields no full batch at the configured
//     batch size (everything would be silently dropped).
//   - Batch-size and lookup errors propagate from the batch package.
package train
