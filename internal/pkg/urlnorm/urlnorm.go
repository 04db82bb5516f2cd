/*
 * @Description: 来源 URL 的规范化与尾段提取，供去重匹配使用。
 * @Author: 安知鱼
 * @Date: 2025-08-06 09:21:14
 * @LastEditTime: 2025-11-19 16:08:40
 * @LastEditors: 安知鱼
 */
package urlnorm

import (
	"net/url"
	"path"
	"strings"
)

// Normalize 将来源 URL 规范化为可比较的形式：
// 解码百分号转义，主机名小写，去掉片段与末尾斜杠，
// 协议相对地址（//host/path）补全为 https。
// 无法解析时退化为原字符串的修剪结果，规范化绝不报错。
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "//") {
		s = "https:" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return strings.TrimSuffix(s, "/")
	}

	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	if unescaped, err := url.PathUnescape(u.EscapedPath()); err == nil {
		u.Path = unescaped
		u.RawPath = ""
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String()
}

// LastSegment 返回规范化 URL 路径的最后一段（去扩展名）。
// 尾段太短时没有区分度，不足 8 个字符返回空串。
func LastSegment(raw string) string {
	u, err := url.Parse(Normalize(raw))
	if err != nil {
		return ""
	}
	seg := path.Base(u.Path)
	if seg == "." || seg == "/" {
		return ""
	}
	if ext := path.Ext(seg); ext != "" {
		seg = strings.TrimSuffix(seg, ext)
	}
	if len(seg) < 8 {
		return ""
	}
	return seg
}
