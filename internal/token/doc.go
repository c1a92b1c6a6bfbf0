// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and verifies the signed bearer tokens of the service.
//
// User tokens carry userId, tenantId, role, deviceType and tokenType "user";
// their lifetime depends on the device category. Client tokens carry
// clientId, tenantId, the raw scopes string, tokenType "client" and the single
// group CLIENT; their lifetime is fixed. Tokens are never stored: validity is
// signature plus expiry, nothing else.
package token
