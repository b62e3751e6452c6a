// Copyright 2012-2014 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmpcodec

import (
	"errors"
	"fmt"
)

// ErrOIDNotIncreasing is returned when a GetNext response repeats the OID
// that was requested.
var ErrOIDNotIncreasing = errors.New("OID not increasing")

// baseOID is walked when no root is given.
var baseOID = OID{1, 3, 6, 1, 2, 1}

// WalkFunc is the type of the function called for each varbind visited by
// WalkStep. If an error is returned the walk stops.
type WalkFunc func(vb Varbind) error

// HasPrefix reports whether o lies in the subtree rooted at prefix.
func (o OID) HasPrefix(prefix OID) bool {
	return len(o) >= len(prefix) && o[:len(prefix)].Equal(prefix)
}

// WalkStep handles the response to a GetNextRequest for requested during a
// walk of the subtree under root. walkFn is called for every varbind inside
// the subtree. It returns the OID to request next, or done once the walk
// left the subtree or reached the end of the MIB view.
func (c *Codec) WalkStep(root, requested OID, response *Packet, walkFn WalkFunc) (next OID, done bool, err error) {
	if len(root) == 0 {
		root = baseOID
	}
	if len(response.Variables) == 0 {
		return nil, true, nil
	}

	for _, v := range response.Variables {
		// exceptions carry the requested name
		if v.Type == EndOfMibView || v.Type == NoSuchObject || v.Type == NoSuchInstance {
			c.Logger.Printf("walk: terminated with type %s", v.Type)
			return nil, true, nil
		}
		if v.Name.Equal(requested) {
			return nil, true, fmt.Errorf("%w: %s", ErrOIDNotIncreasing, v.Name)
		}
		if !v.Name.HasPrefix(root) {
			// Not in the requested root range.
			c.Logger.Printf("walk: %s left %s", v.Name, root)
			return nil, true, nil
		}
		// Report our varbind
		if err := walkFn(v); err != nil {
			return nil, true, err
		}
	}
	// Save last oid for next request
	return response.Variables[len(response.Variables)-1].Name, false, nil
}
