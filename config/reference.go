package config

// Reference returns the built-in 17-vertex windmill: a hub x joined to a, b,
// c and d; four triangles {a_i}, {b_i}, {c_i}, {d_i}; and every hub arm
// joined to one vertex of its own triangle and one of each neighbouring
// triangle. It contains no 4-cycle.
//
// A fresh copy is returned on every call.
func Reference() *GraphSpec {
	return &GraphSpec{
		Name: "windmill",
		Vertices: []string{
			"x", "a", "b", "c", "d",
			"a_1", "a_2", "a_3",
			"b_1", "b_2", "b_3",
			"c_1", "c_2", "c_3",
			"d_1", "d_2", "d_3",
		},
		Edges: [][]string{
			{"x", "a"}, {"x", "b"}, {"x", "c"}, {"x", "d"},

			{"a", "a_1"}, {"a", "b_3"}, {"a", "d_2"},
			{"b", "b_1"}, {"b", "c_3"}, {"b", "a_2"},
			{"c", "c_1"}, {"c", "d_3"}, {"c", "b_2"},
			{"d", "d_1"}, {"d", "a_3"}, {"d", "c_2"},

			{"a_1", "a_2"}, {"a_1", "a_3"}, {"a_2", "a_3"},
			{"b_1", "b_2"}, {"b_1", "b_3"}, {"b_2", "b_3"},
			{"c_1", "c_2"}, {"c_1", "c_3"}, {"c_2", "c_3"},
			{"d_1", "d_2"}, {"d_1", "d_3"}, {"d_2", "d_3"},
		},
	}
}
