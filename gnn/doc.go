// Package gnn assembles two KProp operators into a node classifier.
//
// The forward pass is
//
//	H = SELU(KProp_K(X))          // K hops, diffusion cached
//	H = Dropout(H)                // Train mode only
//	Y = LogSoftmax(KProp_1(H))    // one hop, never cached
//
// The first stage caches its diffusion, so a Classifier is bound to one
// (topology, features) pair until Reset is called. Each row of the output holds
// log-probabilities over the classes; exponentiated rows sum to 1.
//
// Training is external: parameters of both stages are reachable through
// Propagation().Linear() and Head().Linear(), and package metrics provides the
// masked loss and accuracy used to drive an optimizer.
//
// A Classifier is not safe for concurrent Forward calls in Train mode, because
// dropout draws from the classifier's random source.
package gnn
