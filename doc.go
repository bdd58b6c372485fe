// Package kprop is the root of the KProp module: K-hop feature propagation
// for graph neural networks, built on gonum.
//
// The work is split across subpackages:
//
//	matrix/    — row-major dense matrices, validators and gonum-backed kernels
//	topology/  — edge lists, degrees, self-loop augmentation, fixture graphs
//	normalize/ — the Symmetric (GCN) and Uniform (mean) edge-weight schemes
//	kprop/     — the propagation operator: K hops, decay, cache, projection
//	gnn/       — the two-stage node classifier with SELU, dropout, log-softmax
//	metrics/   — masked negative log-likelihood and accuracy
//	config/    — YAML hyper-parameters mapped onto classifier options
//
// A minimal pipeline:
//
//	edges, _ := topology.Cycle(100)
//	clf, _ := gnn.New(features, 16, classes, gnn.WithHops(2), gnn.WithDecay(0.1))
//	logp, _ := clf.Forward(x, edges, nil, gnn.Train)
//	loss, _ := metrics.NLLLoss(logp, labels, trainMask)
//
// Training (gradients, optimizer steps) lives outside this module; every
// trainable parameter is reachable through Operator.Linear().Params().
package kprop
