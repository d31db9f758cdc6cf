// Package dmc extracts iso-surface quad meshes from scalar volumes using the
// dual marching cubes algorithm of Gregory M. Nielson. Faces and vertices of
// standard marching cubes correspond to vertices and faces of the dual mesh;
// since a marching cubes vertex is usually shared by four faces, the dual
// mesh consists entirely of quadrangles.
//
// Under rare circumstances the plain algorithm produces non-manifold meshes.
// The extractor can optionally apply the manifold dual marching cubes
// correction from Rephael Wenger ("Isosurfaces: Geometry, Topology, and
// Algorithms", chapter 3.3.5), which inspects the neighbour across a cube's
// ambiguous face and trades strict duality to marching cubes for a manifold
// result.
//
// The two lookup tables in tables.go are derived from first principles by
// pkg/gentables and regenerated with go generate.
package dmc
