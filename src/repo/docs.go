// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package repo provides the certificate repository collaborator that supplies
// trust material to the validator: intermediate CA certificates, trusted root
// certificates, and certificate revocation lists. The file-system
// implementation loads each category fresh from a configured directory on
// every call, so trust store updates take effect without restarting the
// process. Repository configuration is read from a JSON or YAML file.
package repo
