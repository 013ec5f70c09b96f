package uri

import "strings"

// RemoveDotSegments implements RFC 3986 section 5.2.4: "." segments are
// dropped and ".." removes the preceding segment. A leading '/' is kept and
// a trailing "." or ".." leaves a trailing '/'.
func RemoveDotSegments(path string) string {
	if path == "" || path == "/" {
		return path
	}

	segments := strings.Split(path, "/")
	results := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch segment {
		case "..":
			if len(results) > 0 {
				results = results[:len(results)-1]
			}
		case ".":
		default:
			results = append(results, segment)
		}
	}

	newPath := strings.Join(results, "/")
	last := segments[len(segments)-1]

	if path[0] == '/' && !strings.HasPrefix(newPath, "/") {
		newPath = "/" + newPath
	} else if newPath != "" && (last == "." || last == "..") {
		newPath += "/"
	}
	return newPath
}

// Resolve turns rel into a target URL using base as the context, following
// RFC 3986 section 5.2 in its non-strict form.
//
// An empty rel is a same-document reference and base itself is returned.
func Resolve(base URL, rel URL) (URL, error) {
	if rel.String() == "" {
		return base, nil
	}

	if rel.scheme != "" {
		return rel.WithPath(RemoveDotSegments(rel.path))
	}

	var targetAuthority, targetPath, targetQuery string

	switch {
	case rel.Authority() != "":
		targetAuthority = rel.Authority()
		targetPath = RemoveDotSegments(rel.path)
		targetQuery = rel.query

	case rel.path == "":
		targetAuthority = base.Authority()
		targetPath = base.path
		targetQuery = rel.query
		if targetQuery == "" {
			targetQuery = base.query
		}

	default:
		targetAuthority = base.Authority()
		targetPath = RemoveDotSegments(mergePaths(base, targetAuthority, rel.path))
		targetQuery = rel.query
	}

	return Compose(base.scheme, targetAuthority, targetPath, targetQuery, rel.fragment)
}

// mergePaths implements RFC 3986 section 5.2.3.
func mergePaths(base URL, baseAuthority string, relPath string) string {
	if strings.HasPrefix(relPath, "/") {
		return relPath
	}
	if baseAuthority != "" && base.path == "" {
		return "/" + relPath
	}
	i := strings.LastIndexByte(base.path, '/')
	if i < 0 {
		return relPath
	}
	return base.path[:i+1] + relPath
}
