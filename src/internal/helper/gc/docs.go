// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides buffer pooling helpers that reduce garbage collection
// overhead for repeated I/O operations. The validator's file-system
// repository uses the pool when loading certificate and CRL directories.
package gc
