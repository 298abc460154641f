// Package amplitude computes standard amplitude parameters of a surface
// profile (Ra, Rq, Rz, Rsk, Rku, ...). The same definitions apply to a
// roughness profile (R-parameters) and a waviness profile (W-parameters);
// the caller chooses what it feeds in. All heights are relative to the
// profile mean line.
package amplitude
