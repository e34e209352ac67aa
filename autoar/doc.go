// Package autoar implements automatic AR order selection.
//
// The model order p is the one hyperparameter of an AR model. Select sweeps
// an inclusive range of candidate orders, evaluates each against a held-out
// validation window in level space, and keeps the order with the lowest
// out-of-sample MSE.
//
// # Basic Usage
//
// Split a level series, difference the training window, and sweep:
//
//	train := prices.Slice(0, trainLen)
//	valid := prices.Slice(trainLen, prices.Len())
//
//	cfg := &autoar.Config{MinOrder: 1, MaxOrder: 40}
//	result, err := autoar.Select(train.Diff(), valid.Values, train.Last(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Best order: AR(%d), validation MSE %.4f\n",
//	    result.BestOrder, result.BestMSE)
//
// Per-candidate metrics remain available in Result.Orders and Result.Metrics
// for reporting; candidates whose fit failed carry +Inf metrics and are never
// selected.
//
// Each candidate is scored independently, so the sweep cost is dominated by
// the O(p^2) fits and the range bound should be kept proportional to the
// training length.
package autoar
